package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hadirku_backend/internals/configs"
	authService "hadirku_backend/internals/features/users/auth/service"
	helper "hadirku_backend/internals/helpers"
	helperAuth "hadirku_backend/internals/helpers/auth"
)

type userState struct {
	IsActive bool
	Role     string
}

// AuthMiddleware: verifikasi Bearer JWT, cek blacklist, pastikan user aktif.
// Role diambil dari DB (bukan klaim) supaya perubahan role langsung berlaku.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helperAuth.GetRawAccessToken(c)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token tidak ditemukan")
		}

		claims, err := authService.ParseAccessToken(configs.JWTSecret, raw, time.Now())
		if err != nil {
			if errors.Is(err, authService.ErrMissingSecret) {
				log.Println("[ERROR] JWT_SECRET kosong")
				return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token tidak valid atau kedaluwarsa")
		}

		ctx := c.UserContext()
		blocked, err := helperAuth.IsBlacklisted(ctx, db, raw, configs.JWTSecret)
		if err != nil {
			log.Println("[ERROR] cek blacklist:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if blocked {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - token sudah logout")
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - user id tidak valid")
		}

		var st userState
		err = db.WithContext(ctx).
			Table("users").
			Select("is_active, role").
			Where("id = ?", userID).
			Take(&st).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - user tidak ditemukan")
			}
			log.Println("[ERROR] load user state:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !st.IsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		c.Locals(helper.LocalUserID, userID.String())
		c.Locals(helper.LocalUserRole, st.Role)
		c.Locals(helper.LocalUserName, claims.Name)
		c.Locals(helper.LocalRawToken, raw)
		return c.Next()
	}
}
