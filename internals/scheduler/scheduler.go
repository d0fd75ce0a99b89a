package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	qrScheduler "hadirku_backend/internals/features/attendance/qrtoken/scheduler"
	qrService "hadirku_backend/internals/features/attendance/qrtoken/service"
	authScheduler "hadirku_backend/internals/features/users/auth/scheduler"
	"hadirku_backend/internals/helpers/dbtime"
)

// New membuat cron di zona waktu sekolah; job yang masih jalan tidak ditumpuk.
func New() *cron.Cron {
	return cron.New(
		cron.WithLocation(dbtime.SchoolLocation()),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
}

// Start mendaftarkan semua job lalu menjalankan cron. Panggil Stop() saat shutdown.
func Start(db *gorm.DB, qr *qrService.QRService) (*cron.Cron, error) {
	c := New()

	if _, err := authScheduler.RegisterBlacklistCleanup(c, db); err != nil {
		return nil, err
	}
	if _, err := qrScheduler.RegisterDailyRotation(c, qr); err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[INFO] Scheduler aktif (%d job, tz=%s)", len(c.Entries()), dbtime.SchoolLocation())
	return c, nil
}
