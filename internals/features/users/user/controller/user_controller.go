package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/users/user/dto"
	"hadirku_backend/internals/features/users/user/repository"
	"hadirku_backend/internals/features/users/user/service"
	helper "hadirku_backend/internals/helpers"
)

type UserController struct {
	Svc      *service.ProfileService
	Validate *validator.Validate
}

func NewUserController(svc *service.ProfileService, v *validator.Validate) *UserController {
	if v == nil {
		v = validator.New()
	}
	return &UserController{Svc: svc, Validate: v}
}

func writeProfileError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	case errors.Is(err, repository.ErrAlreadyLocked):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrScheduleCodeUnknown):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotScheduledRole):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrPhotoStorageOff):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] profile: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses profil")
}

// GET /api/u/me
func (uc *UserController) Me(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	u, err := uc.Svc.Me(c.UserContext(), id)
	if err != nil {
		return writeProfileError(c, err)
	}
	return helper.JsonOK(c, "Profil", dto.FromModel(*u))
}

// PUT /api/u/me/schedule-code
func (uc *UserController) SetScheduleCode(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.SetScheduleCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := uc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	u, err := uc.Svc.SetScheduleCode(c.UserContext(), id, req.ScheduleCode)
	if err != nil {
		return writeProfileError(c, err)
	}
	return helper.JsonUpdated(c, "Kode jadwal tersimpan dan terkunci", dto.FromModel(*u))
}

// PUT /api/u/me/device
func (uc *UserController) BindDevice(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.BindDeviceRequest
	_ = c.BodyParser(&req)
	if strings.TrimSpace(req.DeviceID) == "" {
		req.DeviceID = strings.TrimSpace(c.Get("X-Device-ID"))
	}
	if err := uc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	if err := uc.Svc.BindDevice(c.UserContext(), id, req.DeviceID); err != nil {
		return writeProfileError(c, err)
	}
	return helper.JsonUpdated(c, "Perangkat terikat ke akun", fiber.Map{"device_locked": true})
}

// POST /api/u/me/photo (multipart: photo)
func (uc *UserController) UploadPhoto(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File 'photo' wajib diunggah")
	}

	url, err := uc.Svc.UploadPhoto(c.UserContext(), id, fh)
	if err != nil {
		return writeProfileError(c, err)
	}
	return helper.JsonUpdated(c, "Foto profil diperbarui", fiber.Map{"photo_url": url})
}

// GET /api/a/users?role=&q=&page=&per_page=
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	role := strings.TrimSpace(c.Query("role"))
	if role != "" {
		role = constants.NormalizeRole(role)
		if role == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "role tidak dikenal")
		}
	}
	p := helper.ResolvePaging(c, 20, 200)

	users, total, err := uc.Svc.Users.List(c.UserContext(), repository.ListFilter{
		Role:   role,
		Search: c.Query("q"),
		Offset: p.Offset,
		Limit:  p.PerPage,
	})
	if err != nil {
		return writeProfileError(c, err)
	}
	return helper.JsonList(c, "Daftar user", dto.FromModels(users), helper.BuildPagination(total, p, len(users)))
}
