package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	points := [][2]float64{
		{centerLat, centerLon},
		{9.9312, 76.2673},
		{51.5074, -0.1278},
		{-33.8688, 151.2093},
		{0, 180},
		{89.9, -45},
	}

	t.Run("ZeroForSamePoint", func(t *testing.T) {
		for _, p := range points {
			assert.Equal(t, 0.0, HaversineMeters(p[0], p[1], p[0], p[1]))
		}
	})

	t.Run("Symmetric", func(t *testing.T) {
		for _, a := range points {
			for _, b := range points {
				ab := HaversineMeters(a[0], a[1], b[0], b[1])
				ba := HaversineMeters(b[0], b[1], a[0], a[1])
				assert.InDelta(t, ab, ba, 1e-9)
			}
		}
	})

	t.Run("KnownDistance", func(t *testing.T) {
		// London to Paris is roughly 343.5 km on a 6371 km sphere.
		d := HaversineMeters(51.5074, -0.1278, 48.8566, 2.3522)
		assert.InDelta(t, 343_500, d, 1_000)
	})

	t.Run("MeridianArc", func(t *testing.T) {
		assert.InDelta(t, 2000, HaversineMeters(centerLat, centerLon, northOf(2000), centerLon), 1e-6)
	})
}
