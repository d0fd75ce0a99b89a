package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/users/auth/dto"
	"hadirku_backend/internals/features/users/auth/service"
	userDTO "hadirku_backend/internals/features/users/user/dto"
	helper "hadirku_backend/internals/helpers"
	helpersAuth "hadirku_backend/internals/helpers/auth"
)

type AuthController struct {
	Svc      *service.AuthService
	Validate *validator.Validate
}

func NewAuthController(svc *service.AuthService, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New()
	}
	return &AuthController{Svc: svc, Validate: v}
}

func writeAuthError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrGoogleToken):
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAccountInactive), errors.Is(err, service.ErrRoleNotAllowed):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrGoogleDisabled):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	log.Printf("[ERROR] auth: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses autentikasi")
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	u, err := ac.Svc.Register(c.UserContext(), req)
	if err != nil {
		return writeAuthError(c, err)
	}
	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.FromModel(*u))
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	res, err := ac.Svc.Login(c.UserContext(), req)
	if err != nil {
		return writeAuthError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", res)
}

// POST /api/auth/login-google
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	res, err := ac.Svc.LoginGoogle(c.UserContext(), req.IDToken)
	if err != nil {
		return writeAuthError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", res)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := helpersAuth.GetRawAccessToken(c)
	if err := ac.Svc.Logout(c.UserContext(), raw); err != nil {
		log.Printf("[WARN] Failed to blacklist token: %v", err)
	}
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}
