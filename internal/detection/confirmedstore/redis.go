package confirmedstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

var saveDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "storesense_confirmed_store_save_duration_ms",
	Help:    "Latency of confirmed-store persistence in milliseconds",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
})

// Redis key for the confirmed set.
const confirmedKey = "presence:confirmed"

// Redis persists the confirmed set as a JSON array of store IDs. This is the
// production-recommended implementation when the engine backs a multi-device
// account: all devices share one confirmation state.
type Redis struct {
	client *redis.Client
}

// NewRedis constructs a Redis-backed confirmed-store set.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Load(ctx context.Context) (map[string]struct{}, error) {
	raw, err := r.client.Get(ctx, confirmedKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load confirmed stores: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode confirmed stores: %w", err)
	}
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (r *Redis) Save(ctx context.Context, ids map[string]struct{}) error {
	start := time.Now()
	defer func() {
		saveDurationMs.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	// Stable order keeps the stored value diffable when debugging.
	sort.Strings(list)

	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode confirmed stores: %w", err)
	}
	if err := r.client.Set(ctx, confirmedKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save confirmed stores: %w", err)
	}
	return nil
}
