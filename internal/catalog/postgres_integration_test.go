//go:build integration

package catalog_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"storesense/internal/catalog"
	"storesense/internal/geo"
	"storesense/internal/geofence"
	"storesense/internal/wireless"
	"storesense/pkg/testutil/containers"
)

func TestPostgresCatalog(t *testing.T) {
	pc := containers.NewPostgresContainer(t)
	ctx := context.Background()

	cat := catalog.NewPostgres(pc.DB, slog.Default())
	require.NoError(t, cat.EnsureSchema(ctx))

	downtown := geo.Point{Lat: 42.3314, Lng: -83.0458}
	stores := []catalog.Store{
		{
			ID:       "target-7",
			Name:     "Target Midtown",
			Chain:    "Target",
			Address:  "100 Woodward Ave",
			Location: downtown,
			Fence:    geofence.Circle{Center: downtown, RadiusM: 100},
			Networks: []wireless.Network{{SSID: "Target-Guest", BSSID: "aa:bb:cc:dd:ee:ff"}},
		},
		{
			ID:       "cvs-9",
			Name:     "CVS Pharmacy",
			Chain:    "CVS",
			Location: geo.Point{Lat: 42.3322, Lng: -83.0458},
		},
		{
			ID:       "faraway-1",
			Name:     "Far Away Mart",
			Location: geo.Point{Lat: 42.40, Lng: -83.10},
		},
	}
	for _, s := range stores {
		require.NoError(t, cat.Upsert(ctx, s))
	}

	t.Run("fetch nearby sorts and filters", func(t *testing.T) {
		got, err := cat.FetchNearby(ctx, downtown, 150)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "target-7", got[0].ID)
		require.Equal(t, "cvs-9", got[1].ID)
	})

	t.Run("fence and networks survive the round trip", func(t *testing.T) {
		got, err := cat.FetchNearby(ctx, downtown, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)

		circle, ok := got[0].Fence.(geofence.Circle)
		require.True(t, ok)
		require.Equal(t, 100.0, circle.RadiusM)
		require.Len(t, got[0].Networks, 1)
		require.Equal(t, "Target-Guest", got[0].Networks[0].SSID)
	})

	t.Run("upsert replaces", func(t *testing.T) {
		updated := stores[1]
		updated.Name = "CVS Pharmacy Downtown"
		require.NoError(t, cat.Upsert(ctx, updated))

		got, err := cat.SearchByText(ctx, "cvs")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "CVS Pharmacy Downtown", got[0].Name)
	})

	t.Run("search matches address case-insensitively", func(t *testing.T) {
		got, err := cat.SearchByText(ctx, "woodward")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "target-7", got[0].ID)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		require.NoError(t, cat.Upsert(ctx, catalog.Store{
			ID:       "juice-1",
			Name:     "100% Juice Bar",
			Location: geo.Point{Lat: 42.3340, Lng: -83.0458},
		}))

		got, err := cat.SearchByText(ctx, "100%")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "juice-1", got[0].ID)

		// An underscore must not match arbitrary characters.
		got, err = cat.SearchByText(ctx, "1_0%")
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("malformed fence degrades to fence-less", func(t *testing.T) {
		_, err := pc.DB.ExecContext(ctx,
			`UPDATE stores SET fence = '{"type":"blob"}' WHERE id = 'target-7'`)
		require.NoError(t, err)

		got, err := cat.FetchNearby(ctx, downtown, 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Nil(t, got[0].Fence)
	})
}
