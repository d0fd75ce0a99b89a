package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorFor(t *testing.T) {
	a, err := ActorFor("u1", RoleTeacher, " G01 ")
	require.NoError(t, err)
	teacher, ok := a.(TeacherActor)
	require.True(t, ok)
	assert.Equal(t, "G01", teacher.ScheduleCode)
	assert.Equal(t, "G01", ScheduleCodeOf(a))

	a, err = ActorFor("u2", RoleStaff, "G01")
	require.NoError(t, err)
	assert.IsType(t, StaffActor{}, a)
	assert.Empty(t, ScheduleCodeOf(a))
	assert.Equal(t, "u2", a.UserID())

	a, err = ActorFor("u3", RoleAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, a.Role())

	_, err = ActorFor("u4", "user", "")
	assert.Error(t, err)
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleTeacher, NormalizeRole("Teacher"))
	assert.Equal(t, RoleCoach, NormalizeRole(" pembina "))
	assert.Equal(t, RoleStaff, NormalizeRole("STAFF"))
	assert.Empty(t, NormalizeRole("owner"))

	assert.True(t, CanSelfRegister(RoleStaff))
	assert.False(t, CanSelfRegister(RoleAdmin))
	assert.True(t, IsValidRole(RoleAdmin))
}
