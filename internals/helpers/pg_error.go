package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	SQLStateUniqueViolation     = "23505"
	SQLStateForeignKeyViolation = "23503"
	SQLStateCheckViolation      = "23514"
)

// SQLState mengembalikan kode SQLSTATE kalau err berasal dari postgres.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return SQLState(err) == SQLStateUniqueViolation
}

// MapPGError: SQLSTATE → (http status, pesan). duplicateMsg dipakai untuk 23505.
func MapPGError(err error, duplicateMsg string) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "Data tidak ditemukan"
	}
	switch SQLState(err) {
	case SQLStateUniqueViolation:
		if duplicateMsg == "" {
			duplicateMsg = "Data duplikat (unique violation)."
		}
		return http.StatusConflict, duplicateMsg
	case SQLStateForeignKeyViolation:
		return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
	case SQLStateCheckViolation:
		return http.StatusBadRequest, "Data tidak memenuhi constraint."
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error, duplicateMsg string) error {
	code, msg := MapPGError(err, duplicateMsg)
	return JsonError(c, code, msg)
}

// FromFiberError: *fiber.Error → JsonError, selain itu 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
