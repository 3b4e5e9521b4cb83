//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"storesense/internal/events"
	"storesense/pkg/testutil/containers"
)

func TestKafkaSinkPublishes(t *testing.T) {
	rp := containers.NewRedpandaContainer(t)
	ctx := context.Background()

	const topic = "storesense.detections.test"
	sink, err := events.NewKafkaSink([]string{rp.Broker}, topic)
	require.NoError(t, err)
	defer sink.Close()
	require.NoError(t, sink.EnsureTopic(ctx, 1, 1))
	// Idempotent when the topic already exists.
	require.NoError(t, sink.EnsureTopic(ctx, 1, 1))

	want := events.Event{
		ID:         uuid.New(),
		Type:       events.TypeDetected,
		StoreID:    "target-7",
		Method:     "geofence",
		Confidence: 100,
		Timestamp:  time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, sink.Publish(ctx, want))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	require.Equal(t, "target-7", string(records[0].Key))

	var got events.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, events.TypeDetected, got.Type)
	require.Equal(t, 100, got.Confidence)
}
