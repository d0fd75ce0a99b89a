package engine

import (
	"errors"
	"math"
)

const EarthRadiusMeters = 6371000.0

var (
	ErrPositionUnavailable = errors.New("lokasi tidak tersedia, aktifkan GPS lalu coba lagi")
	ErrOutsideRadius       = errors.New("anda berada di luar radius sekolah")
)

type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Distance: jarak great-circle (haversine) dalam meter.
func Distance(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// IsWithinRadius: batas radius ikut dihitung di dalam.
func IsWithinRadius(point, reference Coordinate, radiusMeters float64) bool {
	return Distance(point, reference) <= radiusMeters
}

// ValidatePosition membedakan "posisi tidak ada" dari "di luar radius".
// Jarak dikembalikan supaya bisa ditampilkan ke user.
func ValidatePosition(point *Coordinate, reference Coordinate, radiusMeters float64) (float64, error) {
	if point == nil {
		return 0, ErrPositionUnavailable
	}
	d := Distance(*point, reference)
	if d > radiusMeters {
		return d, ErrOutsideRadius
	}
	return d, nil
}
