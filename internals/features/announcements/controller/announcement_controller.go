package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	annDTO "hadirku_backend/internals/features/announcements/dto"
	annModel "hadirku_backend/internals/features/announcements/model"
	helper "hadirku_backend/internals/helpers"
)

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAnnouncementController(db *gorm.DB, v *validator.Validate) *AnnouncementController {
	if v == nil {
		v = validator.New()
	}
	return &AnnouncementController{DB: db, Validate: v}
}

// ===================== CREATE =====================
// POST /api/a/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req annDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	m := req.ToModel(userID)
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Printf("[ERROR] create announcement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengumuman")
	}
	return helper.JsonCreated(c, "Pengumuman dibuat", annDTO.FromModel(*m))
}

// ===================== LIST =====================
// GET /api/u/announcements (disematkan dulu, lalu terbaru)
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&annModel.AnnouncementModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(announcement_title) LIKE ? OR LOWER(announcement_content) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
	}

	var rows []annModel.AnnouncementModel
	if err := q.
		Order("announcement_is_pinned DESC, announcement_created_at DESC").
		Offset(p.Offset).Limit(p.PerPage).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return helper.JsonList(c, "Daftar pengumuman", annDTO.FromModels(rows), helper.BuildPagination(total, p, len(rows)))
}

// ===================== DELETE =====================
// DELETE /api/a/announcements/:id  (soft delete; ?force=true untuk hard delete)
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	annID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	db := h.DB.WithContext(c.UserContext())
	var existing annModel.AnnouncementModel
	if err := db.Where("announcement_id = ?", annID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	if strings.EqualFold(c.Query("force"), "true") {
		db = db.Unscoped()
	}
	if err := db.Where("announcement_id = ?", annID).Delete(&annModel.AnnouncementModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	return helper.JsonDeleted(c, "Pengumuman dihapus", fiber.Map{"announcement_id": annID})
}
