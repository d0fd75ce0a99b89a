package controller

import (
	"errors"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/schedules/dto"
	"hadirku_backend/internals/features/schedules/repository"
	"hadirku_backend/internals/features/schedules/service"
	userService "hadirku_backend/internals/features/users/user/service"
	helper "hadirku_backend/internals/helpers"
)

const maxImportSize = 5 * 1024 * 1024

type ScheduleController struct {
	Svc     *service.ScheduleService
	Profile *userService.ProfileService
}

func NewScheduleController(svc *service.ScheduleService, profile *userService.ProfileService) *ScheduleController {
	return &ScheduleController{Svc: svc, Profile: profile}
}

// POST /api/a/schedules/import (multipart "file")
func (sc *ScheduleController) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File Excel wajib diunggah (field: file)")
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".xlsx") {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Format file harus .xlsx")
	}
	if fh.Size > maxImportSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 5MB")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer f.Close()

	res, err := sc.Svc.Import(c.UserContext(), f)
	switch {
	case errors.Is(err, service.ErrEmptyImport):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
			"data":    res,
		})
	case errors.Is(err, service.ErrMissingColumns), errors.Is(err, service.ErrNoSheet):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error()+": Kode, Nama, Hari, Jam")
	case err != nil:
		log.Printf("[ERROR] import jadwal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal mengimpor jadwal")
	}
	return helper.JsonCreated(c, "Jadwal berhasil diimpor", res)
}

// GET /api/a/schedules?code=&class=&day=
func (sc *ScheduleController) List(c *fiber.Ctx) error {
	f := repository.ListFilter{
		ScheduleCode: strings.TrimSpace(c.Query("code")),
		ClassName:    strings.TrimSpace(c.Query("class")),
	}
	if raw := strings.TrimSpace(c.Query("day")); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 0 || d > 6 {
			return helper.JsonError(c, fiber.StatusBadRequest, "day harus 0 (Minggu) sampai 6 (Sabtu)")
		}
		f.DayOfWeek = &d
	}
	rows, err := sc.Svc.List(c.UserContext(), f)
	if err != nil {
		return helper.WritePGError(c, err, "")
	}
	p := helper.ResolvePaging(c, 50, 500)
	page, pg := helper.PageSlice(dto.FromModels(rows), p)
	return helper.JsonList(c, "Daftar jadwal", page, pg)
}

// GET /api/u/schedules/mine
func (sc *ScheduleController) Mine(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	actor, _, err := sc.Profile.ResolveActor(c.UserContext(), id)
	if err != nil {
		return helper.WritePGError(c, err, "")
	}
	switch actor.(type) {
	case constants.TeacherActor, constants.CoachActor:
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya guru/pembina yang memiliki jadwal")
	}
	code := constants.ScheduleCodeOf(actor)
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kode jadwal belum diatur di profil")
	}
	rows, err := sc.Svc.Mine(c.UserContext(), code)
	if err != nil {
		return helper.WritePGError(c, err, "")
	}
	return helper.JsonOK(c, "Jadwal saya", dto.FromModels(rows))
}

// GET /api/u/schedules/codes
func (sc *ScheduleController) Codes(c *fiber.Ctx) error {
	codes, err := sc.Svc.Codes(c.UserContext())
	if err != nil {
		return helper.WritePGError(c, err, "")
	}
	if codes == nil {
		codes = []dto.CodeOption{}
	}
	return helper.JsonOK(c, "Kode jadwal", codes)
}
