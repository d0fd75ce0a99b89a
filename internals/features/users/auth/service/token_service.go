package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"hadirku_backend/internals/features/users/user/model"
)

const AccessTTL = 24 * time.Hour

var (
	ErrMissingSecret = errors.New("JWT_SECRET belum diset")
	ErrInvalidToken  = errors.New("token tidak valid")
)

// AccessClaims: klaim access token (HS256).
type AccessClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	Typ  string `json:"typ"`
	jwt.RegisteredClaims
}

func IssueAccessToken(secret string, u model.UserModel, now time.Time) (string, time.Time, error) {
	if strings.TrimSpace(secret) == "" {
		return "", time.Time{}, ErrMissingSecret
	}
	exp := now.Add(AccessTTL)
	claims := AccessClaims{
		Role: u.Role,
		Name: u.FullName,
		Typ:  "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseAccessToken memverifikasi signature + exp (leeway 30 detik).
func ParseAccessToken(secret, raw string, now time.Time) (*AccessClaims, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	claims := &AccessClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Typ != "access" || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || now.After(claims.ExpiresAt.Time.Add(30*time.Second)) {
		return nil, fmt.Errorf("%w: expired", ErrInvalidToken)
	}
	return claims, nil
}

// ExpiryOf: exp tanpa verifikasi signature, dipakai saat logout.
func ExpiryOf(raw string) (time.Time, bool) {
	claims := &AccessClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
