package detection

import "storesense/internal/catalog"

const (
	// confirmationThreshold is the confidence at or above which a match of
	// a never-confirmed store is accepted without asking the user.
	confirmationThreshold = 95

	// geofenceOverrideConfidence is the floor at which geofence containment
	// outranks a conflicting wireless match.
	geofenceOverrideConfidence = 95

	// agreementBonus is added when GPS and wireless agree on the store.
	agreementBonus = 10
)

// fuse merges the GPS and wireless matches into a single result. The second
// return value reports agreement: both signals named the same store, which
// the caller treats as already verified regardless of the fused confidence.
//
// Agreement takes the stronger score plus a bonus. Disagreement is settled
// by geofence containment at high confidence, otherwise by raw confidence
// with GPS winning ties.
func fuse(gps *gpsMatch, wifi *wifiMatch, candidates []catalog.Store) (Result, bool) {
	switch {
	case gps == nil && wifi == nil:
		return Result{Method: MethodGPS, Nearby: candidates}, false
	case wifi == nil:
		return fromGPS(*gps, candidates), false
	case gps == nil:
		return Result{
			Store:      &wifi.store,
			Confidence: wifi.confidence,
			Method:     MethodWifi,
			Nearby:     candidates,
		}, false
	}

	if gps.store.ID == wifi.store.ID {
		confidence := gps.confidence
		if wifi.confidence > confidence {
			confidence = wifi.confidence
		}
		confidence += agreementBonus
		if confidence > 100 {
			confidence = 100
		}
		r := fromGPS(*gps, candidates)
		r.Confidence = confidence
		r.Method = MethodWifi
		return r, true
	}

	if gps.inside && gps.confidence >= geofenceOverrideConfidence {
		return fromGPS(*gps, candidates), false
	}
	if wifi.confidence > gps.confidence {
		return Result{
			Store:      &wifi.store,
			Confidence: wifi.confidence,
			Method:     MethodWifi,
			Nearby:     candidates,
		}, false
	}
	return fromGPS(*gps, candidates), false
}

func fromGPS(m gpsMatch, candidates []catalog.Store) Result {
	method := MethodGPS
	if m.inside {
		method = MethodGeofence
	}
	distance := m.distanceM
	inside := m.inside
	return Result{
		Store:       &m.store,
		Confidence:  m.confidence,
		Method:      method,
		DistanceM:   &distance,
		InsideFence: &inside,
		Nearby:      candidates,
	}
}
