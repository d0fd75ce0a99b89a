package users

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"hadirku_backend/internals/constants"
	authService "hadirku_backend/internals/features/users/auth/service"
	"hadirku_backend/internals/features/users/user/model"
)

type UserSeed struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	ScheduleCode string `json:"schedule_code"`
}

// ParseUserSeeds membaca & memvalidasi isi file seed.
func ParseUserSeeds(raw []byte) ([]UserSeed, error) {
	var inputs []UserSeed
	if err := sonic.Unmarshal(raw, &inputs); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for i := range inputs {
		s := &inputs[i]
		s.Email = strings.ToLower(strings.TrimSpace(s.Email))
		s.ScheduleCode = strings.ToUpper(strings.TrimSpace(s.ScheduleCode))
		if s.Email == "" || s.Password == "" {
			return nil, fmt.Errorf("seed #%d: email & password wajib", i+1)
		}
		role := constants.NormalizeRole(s.Role)
		if !constants.IsValidRole(role) {
			return nil, fmt.Errorf("seed #%d: role %q tidak dikenal", i+1, s.Role)
		}
		s.Role = role
	}
	return inputs, nil
}

// SeedUsersFromJSON: akun demo; email yang sudah ada dilewati.
func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	inputs, err := ParseUserSeeds(file)
	if err != nil {
		return err
	}

	inserted := 0
	for _, data := range inputs {
		var existing model.UserModel
		err := db.Where("LOWER(email) = ?", data.Email).First(&existing).Error
		if err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := authService.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Email, err)
			continue
		}

		u := model.UserModel{
			FullName: data.FullName,
			Email:    data.Email,
			Password: hashed,
			Role:     data.Role,
			IsActive: true,
		}
		if data.ScheduleCode != "" && (data.Role == constants.RoleTeacher || data.Role == constants.RoleCoach) {
			code := data.ScheduleCode
			u.ScheduleCode = &code
		}

		if err := db.Create(&u).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.Email, err)
			continue
		}
		inserted++
	}
	log.Printf("✅ %d user demo diinsert", inserted)
	return nil
}
