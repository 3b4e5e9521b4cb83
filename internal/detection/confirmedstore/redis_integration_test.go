//go:build integration

package confirmedstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"storesense/internal/detection/confirmedstore"
	"storesense/pkg/testutil/containers"
)

func TestRedisRoundTrip(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()
	store := confirmedstore.NewRedis(rc.Client)

	ids, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)

	want := map[string]struct{}{
		"target-7":  {},
		"kroger-44": {},
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Overwrite with a smaller set; removed IDs must not linger.
	require.NoError(t, store.Save(ctx, map[string]struct{}{"cvs-9": {}}))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]struct{}{"cvs-9": {}}, got)
}

func TestRedisLoadRejectsCorruptValue(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()

	require.NoError(t, rc.Client.Set(ctx, "presence:confirmed", "not json", 0).Err())

	store := confirmedstore.NewRedis(rc.Client)
	_, err := store.Load(ctx)
	require.Error(t, err)
}
