package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var school = Coordinate{Lat: -6.200000, Lng: 106.816666}

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(school, school))
}

func TestDistance_OneDegreeLatitude(t *testing.T) {
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 1, Lng: 0}
	// 2πR/360
	assert.InDelta(t, 111194.93, Distance(a, b), 0.5)
}

func TestIsWithinRadius_BoundaryInclusive(t *testing.T) {
	p := Coordinate{Lat: -6.200500, Lng: 106.816900}
	d := Distance(p, school)
	require.Greater(t, d, 0.0)

	assert.True(t, IsWithinRadius(p, school, d))
	assert.True(t, IsWithinRadius(p, school, d+0.001))
	assert.False(t, IsWithinRadius(p, school, d-0.001))
}

func TestValidatePosition(t *testing.T) {
	t.Run("missing fix is a distinct error", func(t *testing.T) {
		_, err := ValidatePosition(nil, school, 100)
		assert.ErrorIs(t, err, ErrPositionUnavailable)
		assert.NotErrorIs(t, err, ErrOutsideRadius)
	})

	t.Run("inside", func(t *testing.T) {
		p := Coordinate{Lat: -6.200100, Lng: 106.816700}
		d, err := ValidatePosition(&p, school, 100)
		require.NoError(t, err)
		assert.Less(t, d, 100.0)
	})

	t.Run("outside", func(t *testing.T) {
		p := Coordinate{Lat: -6.210000, Lng: 106.816666}
		d, err := ValidatePosition(&p, school, 100)
		assert.ErrorIs(t, err, ErrOutsideRadius)
		assert.Greater(t, d, 1000.0)
	})
}
