package geofence

import (
	"errors"
	"strings"

	"storesense/internal/geo"
)

// ErrInvalidDefinition marks a fence that must not be used for matching.
// Services treat the owning store as fence-less for the pass instead of
// failing the whole detection.
var ErrInvalidDefinition = errors.New("invalid geofence definition")

// suspiciousRadiusM bounds plausible storefront footprints. Larger circles
// still validate but are flagged so bad catalog data surfaces in metrics.
const suspiciousRadiusM = 500.0

// Validate checks structural invariants: circles need a positive radius,
// polygons at least three vertices.
func Validate(f Fence) error {
	switch f := f.(type) {
	case Circle:
		if f.RadiusM <= 0 {
			return ErrInvalidDefinition
		}
		return nil
	case Polygon:
		if len(f.Vertices) < 3 {
			return ErrInvalidDefinition
		}
		return nil
	default:
		return ErrInvalidDefinition
	}
}

// IsSuspicious reports whether a valid fence is implausibly large for a
// retail footprint.
func IsSuspicious(f Fence) bool {
	c, ok := f.(Circle)
	return ok && c.RadiusM > suspiciousRadiusM
}

// Default radii by store category. Big-box footprints dwarf pharmacy
// storefronts, so a one-size default misclassifies both.
const (
	bigBoxRadiusM   = 100.0
	pharmacyRadiusM = 30.0
	defaultRadiusM  = 50.0
)

var bigBoxChains = []string{
	"walmart", "target", "costco", "sam's club", "meijer",
	"home depot", "lowe's", "kroger", "ikea",
}

var pharmacyChains = []string{
	"cvs", "walgreens", "rite aid", "duane reade",
}

// SynthesizeDefault builds a circular fence for a store that has none,
// centered on its location with a radius from the category heuristic. The
// result always passes Validate.
func SynthesizeDefault(location geo.Point, chain, name string) Circle {
	return Circle{Center: location, RadiusM: defaultRadius(chain, name)}
}

func defaultRadius(chain, name string) float64 {
	label := strings.ToLower(chain)
	if label == "" {
		label = strings.ToLower(name)
	}
	for _, c := range bigBoxChains {
		if strings.Contains(label, c) {
			return bigBoxRadiusM
		}
	}
	for _, c := range pharmacyChains {
		if strings.Contains(label, c) {
			return pharmacyRadiusM
		}
	}
	return defaultRadiusM
}
