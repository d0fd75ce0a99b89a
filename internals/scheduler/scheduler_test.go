package scheduler

import (
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qrScheduler "hadirku_backend/internals/features/attendance/qrtoken/scheduler"
	authScheduler "hadirku_backend/internals/features/users/auth/scheduler"
)

func TestJobSpecsParse(t *testing.T) {
	for _, spec := range []string{authScheduler.BlacklistCleanupSpec, qrScheduler.DailyRotationSpec} {
		_, err := cron.ParseStandard(spec)
		require.NoError(t, err, spec)
	}
}

func TestNew_UsesSchoolLocation(t *testing.T) {
	c := New()
	assert.NotNil(t, c.Location())
	assert.Empty(t, c.Entries())
}
