package constants

import (
	"fmt"
	"strings"
)

// Nilai kolom users.role
const (
	RoleAdmin   = "admin"
	RoleTeacher = "guru"
	RoleCoach   = "pembina"
	RoleStaff   = "tendik"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyScannersCanScan  = "❌ Admin tidak melakukan presensi (%s)."
	ErrUnknownRoleForAccess = "❌ Role '%s' tidak dikenal."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorScanner(feature string) string {
	return fmt.Sprintf(ErrOnlyScannersCanScan, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{RoleAdmin, RoleTeacher, RoleCoach, RoleStaff}

	// role yang boleh daftar sendiri
	SelfRegisterRoles = []string{RoleTeacher, RoleCoach, RoleStaff}

	// role yang terikat jadwal (kode jadwal)
	ScheduledRoles = []string{RoleTeacher, RoleCoach}

	AdminOnly = []string{RoleAdmin}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func CanSelfRegister(role string) bool {
	for _, r := range SelfRegisterRoles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeRole menerima alias Inggris (teacher/coach/staff).
func NormalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin", "administrator":
		return RoleAdmin
	case "guru", "teacher":
		return RoleTeacher
	case "pembina", "coach":
		return RoleCoach
	case "tendik", "staff":
		return RoleStaff
	default:
		return ""
	}
}

/* ==========================
   Actor: satu varian per role
========================== */

// Actor adalah pemanggil yang sudah terautentikasi.
// Handler melakukan type switch atas varian di bawah.
type Actor interface {
	UserID() string
	Role() string
	isActor()
}

type AdminActor struct{ ID string }

type TeacherActor struct {
	ID           string
	ScheduleCode string
}

type CoachActor struct {
	ID           string
	ScheduleCode string
}

type StaffActor struct{ ID string }

func (a AdminActor) UserID() string   { return a.ID }
func (a TeacherActor) UserID() string { return a.ID }
func (a CoachActor) UserID() string   { return a.ID }
func (a StaffActor) UserID() string   { return a.ID }

func (AdminActor) Role() string   { return RoleAdmin }
func (TeacherActor) Role() string { return RoleTeacher }
func (CoachActor) Role() string   { return RoleCoach }
func (StaffActor) Role() string   { return RoleStaff }

func (AdminActor) isActor()   {}
func (TeacherActor) isActor() {}
func (CoachActor) isActor()   {}
func (StaffActor) isActor()   {}

// ActorFor membangun varian Actor dari role tersimpan.
func ActorFor(userID, role, scheduleCode string) (Actor, error) {
	code := strings.TrimSpace(scheduleCode)
	switch role {
	case RoleAdmin:
		return AdminActor{ID: userID}, nil
	case RoleTeacher:
		return TeacherActor{ID: userID, ScheduleCode: code}, nil
	case RoleCoach:
		return CoachActor{ID: userID, ScheduleCode: code}, nil
	case RoleStaff:
		return StaffActor{ID: userID}, nil
	default:
		return nil, fmt.Errorf(ErrUnknownRoleForAccess, role)
	}
}

// ScheduleCodeOf: kode jadwal untuk guru/pembina, "" untuk lainnya.
func ScheduleCodeOf(a Actor) string {
	switch v := a.(type) {
	case TeacherActor:
		return v.ScheduleCode
	case CoachActor:
		return v.ScheduleCode
	default:
		return ""
	}
}
