package controller

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/attendance/engine"
	"hadirku_backend/internals/features/reports/dto"
	"hadirku_backend/internals/features/reports/export"
	"hadirku_backend/internals/features/reports/service"
	"hadirku_backend/internals/features/reports/summary"
	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/dbtime"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

type ReportController struct {
	Svc      *service.ReportService
	Validate *validator.Validate
}

func NewReportController(svc *service.ReportService, v *validator.Validate) *ReportController {
	if v == nil {
		v = validator.New()
	}
	return &ReportController{Svc: svc, Validate: v}
}

// parseQuery: ?from&to (default: awal bulan s/d hari ini), ?person_id=a,b, ?class=
func parseQuery(c *fiber.Ctx) (dto.ReportQuery, error) {
	today := engine.DateOf(dbtime.NowInSchool())
	q := dto.ReportQuery{
		From:      engine.Date{Year: today.Year, Month: today.Month, Day: 1},
		To:        today,
		ClassName: strings.TrimSpace(c.Query("class")),
	}
	var err error
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		if q.From, err = engine.ParseDate(raw); err != nil {
			return q, fiber.NewError(fiber.StatusBadRequest, "Format tanggal 'from' harus YYYY-MM-DD")
		}
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		if q.To, err = engine.ParseDate(raw); err != nil {
			return q, fiber.NewError(fiber.StatusBadRequest, "Format tanggal 'to' harus YYYY-MM-DD")
		}
	}
	if raw := strings.TrimSpace(c.Query("person_id")); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				q.PersonIDs = append(q.PersonIDs, id)
			}
		}
	}
	return q, nil
}

func writeReportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidRange), errors.Is(err, service.ErrRangeTooLong):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, summary.ErrNotConfigured):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] report: %v", err)
	return helper.WritePGError(c, err, "")
}

func sendTable(c *fiber.Ctx, t export.Table, prefix string, q dto.ReportQuery) error {
	now := dbtime.NowInSchool()
	var (
		raw  []byte
		err  error
		mime string
		ext  string
	)
	switch strings.ToLower(c.Query("format", "xlsx")) {
	case "xlsx", "excel":
		mime, ext = mimeXLSX, "xlsx"
		raw, err = export.ToXLSX(t, now)
	case "pdf":
		mime, ext = mimePDF, "pdf"
		raw, err = export.ToPDF(t, now)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "format harus xlsx atau pdf")
	}
	if err != nil {
		log.Printf("[ERROR] export %s: %v", ext, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file laporan")
	}
	c.Set(fiber.HeaderContentType, mime)
	c.Attachment(export.Filename(prefix, q.From.String(), q.To.String(), ext))
	return c.Send(raw)
}

// GET /api/a/reports/comprehensive
func (rc *ReportController) Comprehensive(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return writeReportError(c, err)
	}
	rows, err := rc.Svc.Comprehensive(c.UserContext(), q)
	if err != nil {
		return writeReportError(c, err)
	}
	p := helper.ResolvePaging(c, 50, 500)
	page, pg := helper.PageSlice(rows, p)
	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Laporan komprehensif",
		"data":       page,
		"counts":     engine.CountByStatus(rows),
		"pagination": pg,
	})
}

// GET /api/a/reports/comprehensive/export?format=xlsx|pdf
func (rc *ReportController) ExportComprehensive(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return writeReportError(c, err)
	}
	rows, err := rc.Svc.Comprehensive(c.UserContext(), q)
	if err != nil {
		return writeReportError(c, err)
	}
	return sendTable(c, service.ComprehensiveTable(rows, q.From, q.To), "laporan_guru", q)
}

// GET /api/a/reports/staff
func (rc *ReportController) Staff(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return writeReportError(c, err)
	}
	recap, err := rc.Svc.StaffRecap(c.UserContext(), q)
	if err != nil {
		return writeReportError(c, err)
	}
	return helper.JsonOK(c, "Rekap tendik", recap)
}

// GET /api/a/reports/staff/export?format=xlsx|pdf
func (rc *ReportController) ExportStaff(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return writeReportError(c, err)
	}
	recap, err := rc.Svc.StaffRecap(c.UserContext(), q)
	if err != nil {
		return writeReportError(c, err)
	}
	return sendTable(c, service.StaffTable(recap), "rekap_tendik", q)
}

// POST /api/a/reports/summary
func (rc *ReportController) Summary(c *fiber.Ctx) error {
	var req dto.SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := rc.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}
	from, _ := engine.ParseDate(req.From)
	to, _ := engine.ParseDate(req.To)

	// panggilan model bisa lama; lepas dari timeout request biasa
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	res, err := rc.Svc.Summary(ctx, from, to)
	if err != nil {
		return writeReportError(c, err)
	}
	return helper.JsonOK(c, "Ringkasan laporan", res)
}
