package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationMessages mengubah validator.ValidationErrors jadi map field → pesan.
func ValidationMessages(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fe.Field() + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = fe.Field() + " minimal " + fe.Param() + "."
		case "max":
			msg = fe.Field() + " maksimal " + fe.Param() + "."
		case "oneof":
			msg = fe.Field() + " harus salah satu dari: " + fe.Param() + "."
		case "latitude", "longitude":
			msg = fe.Field() + " bukan koordinat yang valid."
		default:
			msg = "Format tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}

// ValidateStruct: nil kalau lolos; kalau gagal langsung tulis 422.
func ValidateStruct(c *fiber.Ctx, v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return JsonValidationError(c, ValidationMessages(err))
	}
	return nil
}
