package geofence

import (
	"math"

	"storesense/internal/geo"
)

// Fence is a closed sum type over the supported boundary geometries. Only
// Circle and Polygon implement it; the unexported method keeps the set closed
// so matching code can type-switch exhaustively.
type Fence interface {
	fence()
}

// Circle is a boundary defined by a center point and a radius in meters.
type Circle struct {
	Center  geo.Point `json:"center"`
	RadiusM float64   `json:"radius_m"`
}

// Polygon is a closed ring of vertices; the last vertex implicitly connects
// back to the first. Store footprints are small enough that lat/lng is used
// as a local planar approximation for the interior test.
type Polygon struct {
	Vertices []geo.Point `json:"vertices"`
}

func (Circle) fence()  {}
func (Polygon) fence() {}

// pointInPolygon is indirected so tests can assert the bounding-box
// pre-filter short-circuits the full scan for clearly-outside points.
var pointInPolygon = rayCast

// Contains reports whether p lies inside the fence. Circle containment is
// boundary-inclusive. Polygons run a cheap bounding-box rejection before the
// full ray-casting test.
func Contains(p geo.Point, f Fence) bool {
	switch f := f.(type) {
	case Circle:
		return geo.Distance(p, f.Center) <= f.RadiusM
	case Polygon:
		if !geo.BoundsOf(f.Vertices).Contains(p) {
			return false
		}
		return pointInPolygon(p, f.Vertices)
	default:
		return false
	}
}

// rayCast runs the even-odd ray-casting test over the closed ring.
func rayCast(p geo.Point, vertices []geo.Point) bool {
	inside := false
	n := len(vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := vertices[i], vertices[j]
		if (vi.Lat > p.Lat) != (vj.Lat > p.Lat) &&
			p.Lng < (vj.Lng-vi.Lng)*(p.Lat-vi.Lat)/(vj.Lat-vi.Lat)+vi.Lng {
			inside = !inside
		}
	}
	return inside
}

// EdgeMargin returns the distance in meters from p to the nearest fence edge.
// Used to distinguish solidly-inside positions from borderline ones.
func EdgeMargin(p geo.Point, f Fence) float64 {
	switch f := f.(type) {
	case Circle:
		return math.Abs(f.RadiusM - geo.Distance(p, f.Center))
	case Polygon:
		min := math.Inf(1)
		n := len(f.Vertices)
		for i := 0; i < n; i++ {
			a, b := f.Vertices[i], f.Vertices[(i+1)%n]
			if d := segmentDistanceM(p, a, b); d < min {
				min = d
			}
		}
		return min
	default:
		return 0
	}
}

// segmentDistanceM computes the point-to-segment distance in meters on a
// local planar projection anchored at p's latitude.
func segmentDistanceM(p, a, b geo.Point) float64 {
	mLat := 111132.0
	mLng := 111320.0 * math.Cos(p.Lat*math.Pi/180)

	ax := (a.Lng - p.Lng) * mLng
	ay := (a.Lat - p.Lat) * mLat
	bx := (b.Lng - p.Lng) * mLng
	by := (b.Lat - p.Lat) * mLat

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(ax, ay)
	}

	// Project the origin (p) onto the segment, clamped to its endpoints.
	t := -(ax*dx + ay*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(ax+t*dx, ay+t*dy)
}
