package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/attendance/qrtoken"
	"hadirku_backend/internals/features/attendance/scans/dto"
	"hadirku_backend/internals/features/attendance/scans/service"
	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/dbtime"
)

const HeaderDeviceID = "X-Device-ID"

type ScanController struct {
	Svc      *service.ScanService
	Validate *validator.Validate
}

func NewScanController(svc *service.ScanService, v *validator.Validate) *ScanController {
	if v == nil {
		v = validator.New()
	}
	return &ScanController{Svc: svc, Validate: v}
}

func writeScanError(c *fiber.Ctx, err error) error {
	var we *service.WindowError
	switch {
	case errors.As(err, &we):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, we.Message)
	case errors.Is(err, service.ErrAdminCannotScan),
		errors.Is(err, service.ErrDeviceMismatch),
		errors.Is(err, service.ErrScheduleNotYours):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, qrtoken.ErrTokenMismatch),
		errors.Is(err, qrtoken.ErrTokenExpired),
		errors.Is(err, engine.ErrPositionUnavailable),
		errors.Is(err, engine.ErrOutsideRadius),
		errors.Is(err, service.ErrDeviceMissing),
		errors.Is(err, service.ErrDeviceNotBound),
		errors.Is(err, service.ErrScheduleRequired),
		errors.Is(err, service.ErrNoScheduleCode),
		errors.Is(err, service.ErrScheduleNotToday),
		errors.Is(err, service.ErrLessonCheckOut):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrLeaveAlreadyFiled):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Data user/jadwal tidak ditemukan")
	case helper.IsUniqueViolation(err):
		return helper.JsonError(c, fiber.StatusConflict, "Presensi ini sudah tercatat")
	}
	log.Printf("[ERROR] scan: %v", err)
	return helper.WritePGError(c, err, "")
}

func (sc *ScanController) record(c *fiber.Ctx, kind engine.ScanKind) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Token = strings.TrimSpace(req.Token)
	if err := sc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	req.DeviceID = strings.TrimSpace(c.Get(HeaderDeviceID))

	ev, msg, err := sc.Svc.Record(c.UserContext(), id, kind, req)
	if err != nil {
		return writeScanError(c, err)
	}
	out := dto.FromModel(*ev)
	out.Message = msg
	if kind == engine.ScanCheckOut {
		return helper.JsonCreated(c, "Absen pulang berhasil", out)
	}
	return helper.JsonCreated(c, "Absen masuk berhasil", out)
}

// POST /api/u/attendance/check-in
func (sc *ScanController) CheckIn(c *fiber.Ctx) error { return sc.record(c, engine.ScanCheckIn) }

// POST /api/u/attendance/check-out
func (sc *ScanController) CheckOut(c *fiber.Ctx) error { return sc.record(c, engine.ScanCheckOut) }

// GET /api/u/attendance/today
func (sc *ScanController) Today(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	view, err := sc.Svc.Today(c.UserContext(), id)
	if err != nil {
		return writeScanError(c, err)
	}
	return helper.JsonOK(c, "Presensi hari ini", view)
}

// GET /api/u/attendance/history?from=YYYY-MM-DD&to=YYYY-MM-DD (default 30 hari terakhir)
func (sc *ScanController) History(c *fiber.Ctx) error {
	id, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	to := engine.DateOf(dbtime.NowInSchool())
	from := to.AddDays(-29)
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		if from, err = engine.ParseDate(raw); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal 'from' harus YYYY-MM-DD")
		}
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		if to, err = engine.ParseDate(raw); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal 'to' harus YYYY-MM-DD")
		}
	}

	rows, err := sc.Svc.History(c.UserContext(), id, from, to)
	if err != nil {
		return writeScanError(c, err)
	}
	p := helper.ResolvePaging(c, 50, 200)
	page, pg := helper.PageSlice(dto.FromModels(rows), p)
	return helper.JsonList(c, "Riwayat presensi", page, pg)
}
