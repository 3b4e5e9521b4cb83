// Package adapters bridges the concrete platform boundaries onto the
// detection service's ports.
package adapters

import (
	"context"

	"storesense/internal/detection"
	"storesense/internal/geo"
	"storesense/internal/positioning"
)

// PositionSource adapts a positioning.Source to the detection port.
type PositionSource struct {
	src *positioning.Source
}

// NewPositionSource wraps src for use as a detection.PositionSource.
func NewPositionSource(src *positioning.Source) *PositionSource {
	return &PositionSource{src: src}
}

func (a *PositionSource) Current(ctx context.Context) (geo.Point, error) {
	return a.src.Current(ctx)
}

func (a *PositionSource) Watch(onFix func(geo.Point), onError func(error)) (detection.Canceler, error) {
	sub, err := a.src.Watch(onFix, onError)
	if err != nil {
		return nil, err
	}
	return sub, nil
}
