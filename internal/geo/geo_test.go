package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	detroit := Point{Lat: 42.3314, Lng: -83.0458}

	t.Run("zero for identical points", func(t *testing.T) {
		assert.Zero(t, Distance(detroit, detroit))
	})

	t.Run("symmetric", func(t *testing.T) {
		other := Point{Lat: 42.3400, Lng: -83.0500}
		assert.InDelta(t, Distance(detroit, other), Distance(other, detroit), 1e-9)
	})

	t.Run("known distance", func(t *testing.T) {
		// One degree of latitude is ~111.19 km at the Earth's mean radius.
		north := Point{Lat: detroit.Lat + 1, Lng: detroit.Lng}
		assert.InDelta(t, 111195, Distance(detroit, north), 50)
	})

	t.Run("short urban distance", func(t *testing.T) {
		// ~100m north of the reference point.
		near := Point{Lat: detroit.Lat + 0.0009, Lng: detroit.Lng}
		d := Distance(detroit, near)
		assert.Greater(t, d, 90.0)
		assert.Less(t, d, 110.0)
	})
}

func TestBoundingBox(t *testing.T) {
	pts := []Point{
		{Lat: 42.3310, Lng: -83.0460},
		{Lat: 42.3320, Lng: -83.0450},
		{Lat: 42.3315, Lng: -83.0455},
	}
	box := BoundsOf(pts)

	assert.Equal(t, 42.3310, box.MinLat)
	assert.Equal(t, 42.3320, box.MaxLat)
	assert.Equal(t, -83.0460, box.MinLng)
	assert.Equal(t, -83.0450, box.MaxLng)

	t.Run("contains interior and edge points", func(t *testing.T) {
		assert.True(t, box.Contains(Point{Lat: 42.3315, Lng: -83.0455}))
		assert.True(t, box.Contains(Point{Lat: 42.3310, Lng: -83.0460}))
	})

	t.Run("rejects exterior points", func(t *testing.T) {
		assert.False(t, box.Contains(Point{Lat: 42.3330, Lng: -83.0455}))
		assert.False(t, box.Contains(Point{Lat: 42.3315, Lng: -83.0470}))
	})
}
