package database

import (
	"log"

	"gorm.io/gorm"

	announcementModel "hadirku_backend/internals/features/announcements/model"
	leaveModel "hadirku_backend/internals/features/attendance/leaves/model"
	scanModel "hadirku_backend/internals/features/attendance/scans/model"
	scheduleModel "hadirku_backend/internals/features/schedules/model"
	authModel "hadirku_backend/internals/features/users/auth/model"
	userModel "hadirku_backend/internals/features/users/user/model"
)

// AutoMigrate membuat/menyesuaikan tabel; partial unique index ikut dari tag gorm.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[WARN] pgcrypto: %v", err)
	}
	err := db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&scheduleModel.MasterScheduleModel{},
		&scanModel.ScanEventModel{},
		&leaveModel.LeaveReportModel{},
		&announcementModel.AnnouncementModel{},
	)
	if err != nil {
		return err
	}
	log.Println("✅ AutoMigrate selesai")
	return nil
}
