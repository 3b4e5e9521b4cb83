package catalog

import (
	"context"
	"testing"

	"storesense/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var downtown = geo.Point{Lat: 42.3314, Lng: -83.0458}

func testStores() []Store {
	return []Store{
		{
			ID: "kroger-44", Name: "Kroger #44", Chain: "Kroger",
			Address: "100 Woodward Ave", PostalCode: "48226",
			Location: downtown,
		},
		{
			ID: "cvs-9", Name: "CVS Pharmacy", Chain: "CVS",
			Address: "220 Michigan Ave", PostalCode: "48226",
			Location: geo.Point{Lat: 42.3323, Lng: -83.0458}, // ~100m north
		},
		{
			ID: "target-7", Name: "Target T-2141", Chain: "Target",
			Address: "5 Mile Rd", PostalCode: "48239",
			Location: geo.Point{Lat: 42.42, Lng: -83.28}, // far suburb
		},
	}
}

func TestMemoryFetchNearby(t *testing.T) {
	cat := NewMemory(testStores()...)

	t.Run("returns stores within radius, nearest first", func(t *testing.T) {
		stores, err := cat.FetchNearby(context.Background(), downtown, 150)
		require.NoError(t, err)
		require.Len(t, stores, 2)
		assert.Equal(t, "kroger-44", stores[0].ID)
		assert.Equal(t, "cvs-9", stores[1].ID)
	})

	t.Run("tight radius excludes distant stores", func(t *testing.T) {
		stores, err := cat.FetchNearby(context.Background(), downtown, 50)
		require.NoError(t, err)
		require.Len(t, stores, 1)
		assert.Equal(t, "kroger-44", stores[0].ID)
	})

	t.Run("empty when nothing is close", func(t *testing.T) {
		stores, err := cat.FetchNearby(context.Background(), geo.Point{Lat: 45.0, Lng: -85.0}, 500)
		require.NoError(t, err)
		assert.Empty(t, stores)
	})
}

func TestMemorySearchByText(t *testing.T) {
	cat := NewMemory(testStores()...)

	t.Run("case-insensitive name match", func(t *testing.T) {
		stores, err := cat.SearchByText(context.Background(), "kroger")
		require.NoError(t, err)
		require.Len(t, stores, 1)
		assert.Equal(t, "kroger-44", stores[0].ID)
	})

	t.Run("matches address and postal code", func(t *testing.T) {
		stores, err := cat.SearchByText(context.Background(), "woodward")
		require.NoError(t, err)
		require.Len(t, stores, 1)

		stores, err = cat.SearchByText(context.Background(), "48226")
		require.NoError(t, err)
		assert.Len(t, stores, 2)
	})

	t.Run("no hits for unknown text", func(t *testing.T) {
		stores, err := cat.SearchByText(context.Background(), "wegmans")
		require.NoError(t, err)
		assert.Empty(t, stores)
	})
}

func TestMemoryAdd(t *testing.T) {
	cat := NewMemory()
	cat.Add(testStores()[0])
	cat.Add(Store{ID: "kroger-44", Name: "Kroger #44 (remodeled)", Location: downtown})

	stores, err := cat.SearchByText(context.Background(), "remodeled")
	require.NoError(t, err)
	require.Len(t, stores, 1, "Add replaces by ID instead of duplicating")
}

func TestMatchesQuery(t *testing.T) {
	store := testStores()[0]
	assert.True(t, store.MatchesQuery("KROGER"))
	assert.True(t, store.MatchesQuery(" 48226 "))
	assert.False(t, store.MatchesQuery(""))
	assert.False(t, store.MatchesQuery("   "))
}
