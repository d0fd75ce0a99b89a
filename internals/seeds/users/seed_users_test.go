package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hadirku_backend/internals/constants"
)

func TestParseUserSeeds(t *testing.T) {
	raw := []byte(`[
		{"full_name":"Bu Sari","email":" Sari@Sekolah.id ","password":"rahasia1","role":"teacher","schedule_code":" g01 "},
		{"full_name":"Pak Budi","email":"budi@sekolah.id","password":"rahasia2","role":"tendik"}
	]`)

	seeds, err := ParseUserSeeds(raw)
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	assert.Equal(t, "sari@sekolah.id", seeds[0].Email)
	assert.Equal(t, constants.RoleTeacher, seeds[0].Role)
	assert.Equal(t, "G01", seeds[0].ScheduleCode)
	assert.Equal(t, constants.RoleStaff, seeds[1].Role)
}

func TestParseUserSeeds_Rejects(t *testing.T) {
	_, err := ParseUserSeeds([]byte(`[{"email":"x@y.id","password":"p","role":"kepsek"}]`))
	assert.ErrorContains(t, err, "kepsek")

	_, err = ParseUserSeeds([]byte(`[{"email":"","password":"p","role":"guru"}]`))
	assert.Error(t, err)

	_, err = ParseUserSeeds([]byte(`{`))
	assert.Error(t, err)
}
