package dbtime

import (
	"time"

	"gorm.io/datatypes"

	"hadirku_backend/internals/configs"
	"hadirku_backend/internals/features/attendance/engine"
)

// SchoolLocation: zona waktu sekolah dari SCHOOL_TIMEZONE (fallback Asia/Jakarta → UTC).
func SchoolLocation() *time.Location {
	return configs.Attendance.Location()
}

// NowInSchool: "sekarang" di zona waktu sekolah.
func NowInSchool() time.Time {
	return time.Now().In(SchoolLocation())
}

// ToSchoolTime mengonversi waktu dari DB (UTC) ke zona sekolah. Zero tetap zero.
func ToSchoolTime(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(SchoolLocation())
}

func ToSchoolTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := ToSchoolTime(*t)
	return &v
}

// ToColumn: engine.Date → kolom DATE.
func ToColumn(d engine.Date) datatypes.Date {
	return datatypes.Date(d.In(time.UTC))
}

// FromColumn: kolom DATE → engine.Date (tanpa konversi zona).
func FromColumn(d datatypes.Date) engine.Date {
	return engine.DateOf(time.Time(d))
}
