package details

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hadirku_backend/internals/configs"
	leaveRepo "hadirku_backend/internals/features/attendance/leaves/repository"
	leaveService "hadirku_backend/internals/features/attendance/leaves/service"
	"hadirku_backend/internals/features/attendance/qrtoken"
	qrRepo "hadirku_backend/internals/features/attendance/qrtoken/repository"
	qrService "hadirku_backend/internals/features/attendance/qrtoken/service"
	scanRepo "hadirku_backend/internals/features/attendance/scans/repository"
	scanService "hadirku_backend/internals/features/attendance/scans/service"
	reportService "hadirku_backend/internals/features/reports/service"
	"hadirku_backend/internals/features/reports/summary"
	scheduleRepo "hadirku_backend/internals/features/schedules/repository"
	scheduleService "hadirku_backend/internals/features/schedules/service"
	authService "hadirku_backend/internals/features/users/auth/service"
	userRepo "hadirku_backend/internals/features/users/user/repository"
	userService "hadirku_backend/internals/features/users/user/service"
	helperOSS "hadirku_backend/internals/helpers/oss"
)

// Container menampung service yang dipakai bersama oleh beberapa grup route & cron.
type Container struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Log       *zap.Logger
	Auth      *authService.AuthService
	Profile   *userService.ProfileService
	Schedules *scheduleService.ScheduleService
	QR        *qrService.QRService
	Scans     *scanService.ScanService
	Leaves    *leaveService.LeaveService
	Reports   *reportService.ReportService
}

func NewContainer(db *gorm.DB, rdb *redis.Client, logger *zap.Logger) *Container {
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := configs.Attendance

	users := userRepo.NewUserRepository(db)
	schedules := scheduleService.NewScheduleService(scheduleRepo.NewScheduleRepository(db), logger.Named("schedules"))
	scans := scanRepo.NewScanRepository(db)
	leaves := leaveRepo.NewLeaveRepository(db)

	var photos userService.PhotoUploader
	if oss, err := helperOSS.NewOSSServiceFromEnv("hadirku"); err != nil {
		log.Printf("[WARN] OSS nonaktif, upload foto dimatikan: %v", err)
	} else {
		photos = oss
	}

	qr := qrService.NewQRService(
		qrRepo.NewRedisStore(rdb),
		qrtoken.NewGenerator(settings.Location()),
		settings.QRBaseURL,
		settings.QRImageSizePx,
		logger.Named("qr"),
	)

	var summarizer reportService.Summarizer
	if client := summary.NewClientFromEnv(logger.Named("llm")); client != nil {
		summarizer = client
	} else {
		log.Println("[INFO] LLM_* belum diset, ringkasan laporan dinonaktifkan")
	}

	return &Container{
		DB:        db,
		Validate:  validator.New(),
		Log:       logger,
		Auth:      authService.NewAuthService(db, users, authService.NewGoogleVerifier(configs.GoogleClientID), configs.JWTSecret, logger.Named("auth")),
		Profile:   userService.NewProfileService(users, schedules, photos, logger.Named("profile")),
		Schedules: schedules,
		QR:        qr,
		Scans:     scanService.NewScanService(users, qr, schedules, leaves, scans, settings, logger.Named("scans")),
		Leaves:    leaveService.NewLeaveService(leaves, logger.Named("leaves")),
		Reports:   reportService.NewReportService(schedules, users, scans, leaves, summarizer, settings, logger.Named("reports")),
	}
}
