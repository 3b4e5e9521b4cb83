package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storesense/internal/catalog"
	"storesense/internal/geo"
)

func TestFuse(t *testing.T) {
	storeA := catalog.Store{ID: "a", Name: "Store A", Location: geo.Point{Lat: 42.3314, Lng: -83.0458}}
	storeB := catalog.Store{ID: "b", Name: "Store B", Location: geo.Point{Lat: 42.3320, Lng: -83.0458}}
	candidates := []catalog.Store{storeA, storeB}

	t.Run("no matches", func(t *testing.T) {
		r, agreed := fuse(nil, nil, candidates)
		assert.False(t, agreed)
		assert.Nil(t, r.Store)
		assert.Equal(t, 0, r.Confidence)
		assert.Equal(t, candidates, r.Nearby)
	})

	t.Run("gps only inside fence", func(t *testing.T) {
		r, agreed := fuse(&gpsMatch{store: storeA, distanceM: 12, inside: true, confidence: 100}, nil, candidates)
		assert.False(t, agreed)
		assert.Equal(t, "a", r.Store.ID)
		assert.Equal(t, MethodGeofence, r.Method)
		assert.Equal(t, 100, r.Confidence)
		assert.Equal(t, 12.0, *r.DistanceM)
		assert.True(t, *r.InsideFence)
	})

	t.Run("gps only outside fence", func(t *testing.T) {
		r, agreed := fuse(&gpsMatch{store: storeA, distanceM: 40, confidence: 85}, nil, candidates)
		assert.False(t, agreed)
		assert.Equal(t, MethodGPS, r.Method)
		assert.False(t, *r.InsideFence)
	})

	t.Run("wifi only", func(t *testing.T) {
		r, agreed := fuse(nil, &wifiMatch{store: storeB, confidence: 95}, candidates)
		assert.False(t, agreed)
		assert.Equal(t, "b", r.Store.ID)
		assert.Equal(t, MethodWifi, r.Method)
		assert.Equal(t, 95, r.Confidence)
		assert.Nil(t, r.DistanceM)
	})

	t.Run("agreement takes stronger score plus bonus", func(t *testing.T) {
		r, agreed := fuse(
			&gpsMatch{store: storeA, distanceM: 30, inside: true, confidence: 95},
			&wifiMatch{store: storeA, confidence: 85},
			candidates,
		)
		assert.True(t, agreed)
		assert.Equal(t, "a", r.Store.ID)
		assert.Equal(t, MethodWifi, r.Method)
		assert.Equal(t, 100, r.Confidence)
		assert.True(t, *r.InsideFence)
	})

	t.Run("agreement never exceeds 100", func(t *testing.T) {
		r, agreed := fuse(
			&gpsMatch{store: storeA, inside: true, confidence: 100},
			&wifiMatch{store: storeA, confidence: 100},
			candidates,
		)
		assert.True(t, agreed)
		assert.Equal(t, 100, r.Confidence)
	})

	t.Run("high confidence containment beats conflicting wifi", func(t *testing.T) {
		r, agreed := fuse(
			&gpsMatch{store: storeA, distanceM: 90, inside: true, confidence: 98},
			&wifiMatch{store: storeB, confidence: 100},
			candidates,
		)
		assert.False(t, agreed)
		assert.Equal(t, "a", r.Store.ID)
		assert.Equal(t, MethodGeofence, r.Method)
		assert.Equal(t, 98, r.Confidence)
	})

	t.Run("conflict without containment goes to higher confidence", func(t *testing.T) {
		r, agreed := fuse(
			&gpsMatch{store: storeA, distanceM: 45, confidence: 85},
			&wifiMatch{store: storeB, confidence: 95},
			candidates,
		)
		assert.False(t, agreed)
		assert.Equal(t, "b", r.Store.ID)
		assert.Equal(t, MethodWifi, r.Method)
	})

	t.Run("conflict ties go to gps", func(t *testing.T) {
		r, agreed := fuse(
			&gpsMatch{store: storeA, distanceM: 45, confidence: 85},
			&wifiMatch{store: storeB, confidence: 85},
			candidates,
		)
		assert.False(t, agreed)
		assert.Equal(t, "a", r.Store.ID)
		assert.Equal(t, MethodGPS, r.Method)
	})
}
