package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/attendance/leaves/dto"
	"hadirku_backend/internals/features/attendance/leaves/service"
	userService "hadirku_backend/internals/features/users/user/service"
	helper "hadirku_backend/internals/helpers"
)

type LeaveController struct {
	Svc      *service.LeaveService
	Profile  *userService.ProfileService
	Validate *validator.Validate
}

func NewLeaveController(svc *service.LeaveService, profile *userService.ProfileService, v *validator.Validate) *LeaveController {
	if v == nil {
		v = validator.New()
	}
	return &LeaveController{Svc: svc, Profile: profile, Validate: v}
}

// POST /api/u/leaves
func (lc *LeaveController) Create(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := lc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	actor, _, err := lc.Profile.ResolveActor(c.UserContext(), id)
	if err != nil {
		return helper.WritePGError(c, err, "")
	}
	m, err := lc.Svc.Create(c.UserContext(), actor, req)
	if err != nil {
		if errors.Is(err, service.ErrAdminNoLeave) {
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		}
		if !helper.IsUniqueViolation(err) {
			log.Printf("[ERROR] create leave: %v", err)
		}
		return helper.WritePGError(c, err, "Laporan izin untuk hari ini sudah dikirim")
	}
	return helper.JsonCreated(c, "Laporan izin tersimpan", dto.FromModel(*m))
}

// GET /api/u/leaves
func (lc *LeaveController) ListMine(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	actor, _, err := lc.Profile.ResolveActor(c.UserContext(), id)
	if err != nil {
		return helper.WritePGError(c, err, "")
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := lc.Svc.ListMine(c.UserContext(), actor, p.Offset, p.PerPage)
	if err != nil {
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonList(c, "Riwayat izin", dto.FromModels(rows), helper.BuildPagination(total, p, len(rows)))
}
