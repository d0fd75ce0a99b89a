package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/users/auth/dto"
	userDTO "hadirku_backend/internals/features/users/user/dto"
	"hadirku_backend/internals/features/users/user/model"
	"hadirku_backend/internals/features/users/user/repository"
	helper "hadirku_backend/internals/helpers"
	helpersAuth "hadirku_backend/internals/helpers/auth"
)

var (
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrEmailTaken         = errors.New("email sudah terdaftar")
	ErrRoleNotAllowed     = errors.New("role tidak boleh didaftarkan sendiri")
	ErrAccountInactive    = errors.New("akun Anda telah dinonaktifkan, hubungi admin")
	ErrGoogleDisabled     = errors.New("login Google belum dikonfigurasi")
	ErrGoogleToken        = errors.New("Google ID token tidak valid")
)

type GoogleIdentity struct {
	Sub   string
	Email string
	Name  string
}

// GoogleVerifier memverifikasi ID token terhadap client id.
type GoogleVerifier interface {
	Verify(idToken string) (GoogleIdentity, error)
}

type futurendaVerifier struct{ clientID string }

func NewGoogleVerifier(clientID string) GoogleVerifier {
	if strings.TrimSpace(clientID) == "" {
		return nil
	}
	return futurendaVerifier{clientID: clientID}
}

func (v futurendaVerifier) Verify(idToken string) (GoogleIdentity, error) {
	ver := googleAuthIDTokenVerifier.Verifier{}
	if err := ver.VerifyIDToken(idToken, []string{v.clientID}); err != nil {
		return GoogleIdentity{}, err
	}
	cs, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return GoogleIdentity{}, err
	}
	return GoogleIdentity{Sub: cs.Sub, Email: cs.Email, Name: cs.Name}, nil
}

type AuthService struct {
	DB     *gorm.DB
	Users  *repository.UserRepository
	Google GoogleVerifier
	Secret string
	Log    *zap.Logger
	Now    func() time.Time
}

func NewAuthService(db *gorm.DB, users *repository.UserRepository, google GoogleVerifier, secret string, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{DB: db, Users: users, Google: google, Secret: secret, Log: log, Now: time.Now}
}

func (s *AuthService) issue(u model.UserModel) (*dto.LoginResponse, error) {
	now := s.Now()
	tok, exp, err := IssueAccessToken(s.Secret, u, now)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresIn:   int64(exp.Sub(now).Seconds()),
		User:        userDTO.FromModel(u),
	}, nil
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.UserModel, error) {
	role := constants.NormalizeRole(req.Role)
	if !constants.CanSelfRegister(role) {
		return nil, ErrRoleNotAllowed
	}
	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u := &model.UserModel{
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Log.Info("user registered", zap.String("user_id", u.ID.String()), zap.String("role", role))
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(u.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrAccountInactive
	}
	return s.issue(*u)
}

// LoginGoogle: cari by google_id, lalu by email (tautkan), kalau tidak ada buat user guru.
func (s *AuthService) LoginGoogle(ctx context.Context, idToken string) (*dto.LoginResponse, error) {
	if s.Google == nil {
		return nil, ErrGoogleDisabled
	}
	id, err := s.Google.Verify(idToken)
	if err != nil {
		s.Log.Warn("google token rejected", zap.Error(err))
		return nil, ErrGoogleToken
	}

	u, err := s.Users.FindByGoogleID(ctx, id.Sub)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u, err = s.Users.FindByEmail(ctx, id.Email)
		switch {
		case err == nil:
			if lerr := s.Users.LinkGoogleID(ctx, u.ID, id.Sub); lerr != nil {
				return nil, lerr
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			u, err = s.createGoogleUser(ctx, id)
		}
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrAccountInactive
	}
	return s.issue(*u)
}

func (s *AuthService) createGoogleUser(ctx context.Context, id GoogleIdentity) (*model.UserModel, error) {
	// password acak; akun Google tidak login via password
	b := make([]byte, 24)
	_, _ = rand.Read(b)
	hash, err := HashPassword(hex.EncodeToString(b))
	if err != nil {
		return nil, err
	}
	sub := id.Sub
	name := strings.TrimSpace(id.Name)
	if name == "" {
		name = id.Email
	}
	u := &model.UserModel{
		FullName: name,
		Email:    strings.ToLower(id.Email),
		Password: hash,
		GoogleID: &sub,
		Role:     constants.RoleTeacher,
		IsActive: true,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Log.Info("google user created", zap.String("user_id", u.ID.String()))
	return u, nil
}

// Logout: blacklist token sampai exp-nya; idempotent.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if strings.TrimSpace(rawToken) == "" {
		return nil
	}
	exp, ok := ExpiryOf(rawToken)
	if !ok {
		exp = s.Now().Add(AccessTTL)
	}
	return helpersAuth.Add(ctx, s.DB, rawToken, s.Secret, exp.Add(time.Minute))
}

// EnsureAdmin membuat akun admin dari ADMIN_EMAIL/ADMIN_PASSWORD bila belum ada.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if name == "" {
		name = "Administrator"
	}
	u := &model.UserModel{FullName: name, Email: email, Password: hash, Role: constants.RoleAdmin, IsActive: true}
	if err := s.Users.Create(ctx, u); err != nil {
		return err
	}
	s.Log.Info("admin seeded", zap.String("email", email))
	return nil
}
