package wireless

import "sort"

// Match is a store candidate scored from wireless observations.
type Match struct {
	StoreID    string
	Confidence int
}

// Scoring tiers. Base score applies to any identifier match; known signal
// strength refines it, and a BSSID match earns a bonus because the hardware
// identifier is a much stronger fingerprint than a reusable SSID.
const (
	baseMatchConfidence = 50
	bssidBonus          = 10
	maxConfidence       = 100
)

// MatchStores scores observations against each store's registered networks
// and returns matches sorted by descending confidence (store ID ascending for
// equal scores, so ordering is deterministic). Observations without any
// identifier are skipped. A store keeps its single best score across all
// observations.
func MatchStores(observations []Observation, index map[string][]Network) []Match {
	best := make(map[string]int)

	for _, obs := range observations {
		if !obs.Usable() {
			continue
		}
		for storeID, networks := range index {
			for _, net := range networks {
				if !net.Usable() {
					continue
				}
				byBSSID := net.BSSID != "" && net.BSSID == obs.BSSID
				bySSID := net.SSID != "" && net.SSID == obs.SSID
				if !byBSSID && !bySSID {
					continue
				}
				score := scoreSignal(obs.SignalDBM)
				if byBSSID {
					score += bssidBonus
				}
				if score > maxConfidence {
					score = maxConfidence
				}
				if score > best[storeID] {
					best[storeID] = score
				}
			}
		}
	}

	matches := make([]Match, 0, len(best))
	for storeID, confidence := range best {
		matches = append(matches, Match{StoreID: storeID, Confidence: confidence})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		return matches[i].StoreID < matches[j].StoreID
	})
	return matches
}

// scoreSignal maps signal strength to confidence. Unknown strength keeps the
// base score. Bounds are exclusive: exactly -60dBm lands in the 85 tier.
func scoreSignal(dbm *int) int {
	if dbm == nil {
		return baseMatchConfidence
	}
	switch {
	case *dbm > -60:
		return 95
	case *dbm > -70:
		return 85
	case *dbm > -80:
		return 70
	default:
		return baseMatchConfidence
	}
}
