package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/attendance/qrtoken"
	"hadirku_backend/internals/features/attendance/qrtoken/service"
	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/dbtime"
)

type QRController struct {
	Svc *service.QRService
}

func NewQRController(svc *service.QRService) *QRController {
	return &QRController{Svc: svc}
}

type qrResponse struct {
	qrtoken.Token
	Content string `json:"content"`
}

// GET /api/a/qr/current
func (qc *QRController) Current(c *fiber.Ctx) error {
	tok, err := qc.Svc.Current(c.UserContext(), dbtime.NowInSchool())
	if err != nil {
		log.Printf("[ERROR] qr current: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Token QR tidak tersedia")
	}
	return helper.JsonOK(c, "Token QR aktif", qrResponse{Token: tok, Content: qrtoken.Content(qc.Svc.BaseURL, tok)})
}

// GET /api/a/qr/current.png
func (qc *QRController) CurrentPNG(c *fiber.Ctx) error {
	png, tok, err := qc.Svc.PNG(c.UserContext(), dbtime.NowInSchool())
	if err != nil {
		log.Printf("[ERROR] qr png: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Gagal membuat gambar QR")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set("X-QR-Expires-At", strconv.FormatInt(tok.ExpiresAt.Unix(), 10))
	return c.Send(png)
}

// POST /api/a/qr/rotate
func (qc *QRController) Rotate(c *fiber.Ctx) error {
	tok, err := qc.Svc.Rotate(c.UserContext(), dbtime.NowInSchool())
	if err != nil {
		log.Printf("[ERROR] qr rotate: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Gagal memperbarui token QR")
	}
	return helper.JsonUpdated(c, "Token QR diperbarui", qrResponse{Token: tok, Content: qrtoken.Content(qc.Svc.BaseURL, tok)})
}
