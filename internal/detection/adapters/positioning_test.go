package adapters_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storesense/internal/detection"
	"storesense/internal/detection/adapters"
	"storesense/internal/geo"
	"storesense/internal/positioning"
)

type grantedSensor struct {
	fix   positioning.Fix
	onFix func(positioning.Fix)
	stops int
}

func (s *grantedSensor) Permission(context.Context) (positioning.Permission, error) {
	return positioning.PermissionGranted, nil
}

func (s *grantedSensor) RequestPermission(context.Context) (positioning.Permission, error) {
	return positioning.PermissionGranted, nil
}

func (s *grantedSensor) Fix(context.Context) (positioning.Fix, error) {
	return s.fix, nil
}

func (s *grantedSensor) Watch(_ context.Context, _ positioning.WatchConfig, onFix func(positioning.Fix), _ func(error)) (func(), error) {
	s.onFix = onFix
	return func() { s.stops++ }, nil
}

func TestPositionSourceAdapter(t *testing.T) {
	downtown := geo.Point{Lat: 42.3314, Lng: -83.0458}
	sensor := &grantedSensor{fix: positioning.Fix{Point: downtown, ObservedAt: time.Now()}}

	src, err := positioning.New(sensor, slog.Default())
	require.NoError(t, err)

	// The adapter must satisfy the detection port.
	var port detection.PositionSource = adapters.NewPositionSource(src)

	got, err := port.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, downtown, got)

	var updates []geo.Point
	sub, err := port.Watch(func(p geo.Point) { updates = append(updates, p) }, nil)
	require.NoError(t, err)
	require.NotNil(t, sub)

	sensor.onFix(positioning.Fix{Point: downtown, ObservedAt: time.Now()})
	require.Len(t, updates, 1)

	sub.Cancel()
	require.Equal(t, 1, sensor.stops)
}
