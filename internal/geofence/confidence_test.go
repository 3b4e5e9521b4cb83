package geofence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceInside(t *testing.T) {
	t.Run("at center", func(t *testing.T) {
		assert.Equal(t, 100, Confidence(0, true, 100))
	})

	t.Run("tiers by distance", func(t *testing.T) {
		assert.Equal(t, 100, Confidence(25, true, 0))
		assert.Equal(t, 98, Confidence(60, true, 0))
		assert.Equal(t, 95, Confidence(150, true, 0))
	})

	t.Run("solid-inside bonus", func(t *testing.T) {
		assert.Equal(t, 100, Confidence(60, true, 30))
		assert.Equal(t, 97, Confidence(150, true, 30))
		// Exactly 20m from the edge is borderline, no bonus.
		assert.Equal(t, 98, Confidence(60, true, 20))
	})

	t.Run("bonus never exceeds 100", func(t *testing.T) {
		assert.Equal(t, 100, Confidence(10, true, 500))
	})
}

func TestConfidenceOutside(t *testing.T) {
	cases := []struct {
		distance float64
		want     int
	}{
		{0, 100}, {10, 100}, {11, 95}, {25, 95}, {26, 85},
		{50, 85}, {51, 70}, {100, 70}, {101, 50}, {200, 50}, {201, 30}, {5000, 30},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Confidence(tc.distance, false, 0), "distance %.0f", tc.distance)
	}
}

// Confidence must never increase as distance grows while containment status
// stays fixed.
func TestConfidenceMonotonic(t *testing.T) {
	for _, inside := range []bool{true, false} {
		prev := 101
		for d := 0.0; d <= 1000; d += 0.5 {
			got := Confidence(d, inside, 0)
			assert.LessOrEqual(t, got, prev, "inside=%v distance=%.1f", inside, d)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
			prev = got
		}
	}
}
