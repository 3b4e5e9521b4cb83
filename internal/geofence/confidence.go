package geofence

// Confidence thresholds were tuned against field captures of storefront GPS
// accuracy; keep the tiers in sync with the tests before changing them.
const solidInsideMarginM = 20.0

// Confidence scores a position against a store on a 0-100 scale, piecewise in
// distance to the store center and non-increasing for a fixed containment
// status. edgeMarginM only matters when inside: positions strictly more than
// 20m from the nearest edge earn a small solid-inside bonus.
func Confidence(distanceM float64, inside bool, edgeMarginM float64) int {
	if inside {
		score := 95
		switch {
		case distanceM <= 25:
			score = 100
		case distanceM <= 100:
			score = 98
		}
		if edgeMarginM > solidInsideMarginM {
			score += 2
		}
		if score > 100 {
			score = 100
		}
		return score
	}

	switch {
	case distanceM <= 10:
		return 100
	case distanceM <= 25:
		return 95
	case distanceM <= 50:
		return 85
	case distanceM <= 100:
		return 70
	case distanceM <= 200:
		return 50
	default:
		return 30
	}
}
