package wireless

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dbm(v int) *int { return &v }

func obs(ssid, bssid string, signal *int) Observation {
	return Observation{
		Network:    Network{SSID: ssid, BSSID: bssid},
		SignalDBM:  signal,
		ObservedAt: time.Now(),
	}
}

func TestMatchStores(t *testing.T) {
	index := map[string][]Network{
		"kroger-44": {{SSID: "Kroger_Free_WiFi", BSSID: "BB:CC:DD:EE:FF:01"}},
		"cvs-9":     {{SSID: "CVS_Guest"}},
	}

	t.Run("bssid match with strong signal caps at 100", func(t *testing.T) {
		matches := MatchStores([]Observation{
			obs("Kroger_Free_WiFi", "BB:CC:DD:EE:FF:01", dbm(-55)),
		}, index)

		require.Len(t, matches, 1)
		assert.Equal(t, "kroger-44", matches[0].StoreID)
		assert.Equal(t, 100, matches[0].Confidence) // 95 signal + 10 bssid, capped
	})

	t.Run("ssid-only match without signal keeps base score", func(t *testing.T) {
		matches := MatchStores([]Observation{obs("CVS_Guest", "", nil)}, index)

		require.Len(t, matches, 1)
		assert.Equal(t, "cvs-9", matches[0].StoreID)
		assert.Equal(t, 50, matches[0].Confidence)
	})

	t.Run("signal tiers with exclusive bounds", func(t *testing.T) {
		for _, tc := range []struct {
			signal int
			want   int
		}{
			{-45, 95},
			{-60, 85}, // exactly -60 falls into the next tier down
			{-65, 85},
			{-70, 70},
			{-75, 70},
			{-80, 50},
			{-90, 50},
		} {
			matches := MatchStores([]Observation{obs("CVS_Guest", "", dbm(tc.signal))}, index)
			require.Len(t, matches, 1, "signal %d", tc.signal)
			assert.Equal(t, tc.want, matches[0].Confidence, "signal %d", tc.signal)
		}
	})

	t.Run("observations without identifiers are skipped", func(t *testing.T) {
		matches := MatchStores([]Observation{obs("", "", dbm(-40))}, index)
		assert.Empty(t, matches)
	})

	t.Run("no registered network matches", func(t *testing.T) {
		matches := MatchStores([]Observation{obs("Airport_WiFi", "", dbm(-40))}, index)
		assert.Empty(t, matches)
	})

	t.Run("sorted descending by confidence", func(t *testing.T) {
		matches := MatchStores([]Observation{
			obs("CVS_Guest", "", dbm(-75)),
			obs("Kroger_Free_WiFi", "BB:CC:DD:EE:FF:01", dbm(-55)),
		}, index)

		require.Len(t, matches, 2)
		assert.Equal(t, "kroger-44", matches[0].StoreID)
		assert.Equal(t, "cvs-9", matches[1].StoreID)
		assert.Greater(t, matches[0].Confidence, matches[1].Confidence)
	})

	t.Run("store keeps its best score across observations", func(t *testing.T) {
		matches := MatchStores([]Observation{
			obs("Kroger_Free_WiFi", "", dbm(-85)),
			obs("Kroger_Free_WiFi", "BB:CC:DD:EE:FF:01", dbm(-65)),
		}, index)

		require.Len(t, matches, 1)
		assert.Equal(t, 95, matches[0].Confidence) // 85 signal + 10 bssid
	})
}

func TestNetworkUsable(t *testing.T) {
	assert.False(t, Network{}.Usable())
	assert.True(t, Network{SSID: "x"}.Usable())
	assert.True(t, Network{BSSID: "aa:bb"}.Usable())
}
