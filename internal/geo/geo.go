package geo

import "math"

// Point is a geographic coordinate in decimal degrees (WGS 84).
// It is a plain value type; treat it as immutable.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// earthRadiusM is the mean Earth radius used for great-circle distances.
const earthRadiusM = 6371000.0

// Distance returns the great-circle (haversine) distance between a and b in
// meters. It is symmetric and zero iff a == b.
func Distance(a, b Point) float64 {
	if a == b {
		return 0
	}

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * earthRadiusM * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// BoundingBox is an axis-aligned rectangle in lat/lng space.
type BoundingBox struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// BoundsOf computes the bounding box of a non-empty point sequence.
func BoundsOf(pts []Point) BoundingBox {
	box := BoundingBox{
		MinLat: math.Inf(1), MinLng: math.Inf(1),
		MaxLat: math.Inf(-1), MaxLng: math.Inf(-1),
	}
	for _, p := range pts {
		box.MinLat = math.Min(box.MinLat, p.Lat)
		box.MinLng = math.Min(box.MinLng, p.Lng)
		box.MaxLat = math.Max(box.MaxLat, p.Lat)
		box.MaxLng = math.Max(box.MaxLng, p.Lng)
	}
	return box
}

// Contains reports whether p falls inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}
