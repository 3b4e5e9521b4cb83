package detection

import "storesense/internal/catalog"

// Method says which signal produced a detection.
type Method string

const (
	// MethodGeofence means geofence containment decided the match.
	MethodGeofence Method = "geofence"
	// MethodGPS means plain distance to the store center decided it.
	MethodGPS Method = "gps"
	// MethodWifi means wireless matching decided it, including the case where
	// GPS and wireless agreed (the combined signal is reported as wifi).
	MethodWifi Method = "wifi"
	// MethodManual means the user picked the store explicitly.
	MethodManual Method = "manual"
)

// Result is the outcome of one detection pass. A nil Store with zero
// confidence means nothing matched; that is a valid answer, not an error.
type Result struct {
	Store       *catalog.Store  `json:"store,omitempty"`
	Confidence  int             `json:"confidence"`
	Method      Method          `json:"method"`
	DistanceM   *float64        `json:"distance_m,omitempty"`
	InsideFence *bool           `json:"inside_geofence,omitempty"`
	Nearby      []catalog.Store `json:"nearby_stores,omitempty"`
	// RequiresConfirmation asks the UI to have the user verify the match.
	// Always false for stores the user confirmed before.
	RequiresConfirmation bool `json:"requires_confirmation"`
}
