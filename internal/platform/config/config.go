package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything main needs to wire the service.
type Config struct {
	Addr           string
	DeviceTokenKey string
	PostgresDSN    string
	Redis          RedisConfig
	Kafka          KafkaConfig
	Detection      DetectionConfig
}

// RedisConfig configures the optional Redis connection. An empty URL means
// Redis is not used and the confirmed-store set lives in process memory only.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional detection event stream.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// DetectionConfig holds the engine tunables.
type DetectionConfig struct {
	MaxDistanceM     float64
	WatchRadiusM     float64
	PositionTimeout  time.Duration
	MaxFixAge        time.Duration
	FenceCacheTTL    time.Duration
	WirelessFallback bool
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:           envString("STORESENSE_ADDR", ":8080"),
		DeviceTokenKey: envString("DEVICE_TOKEN_KEY", "dev-secret-key-change-in-production"),
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: envList("KAFKA_BROKERS"),
			Topic:   envString("KAFKA_DETECTION_TOPIC", "storesense.detections"),
		},
		Detection: DetectionConfig{
			MaxDistanceM:     envFloat("DETECTION_MAX_DISTANCE_M", 50),
			WatchRadiusM:     envFloat("DETECTION_WATCH_RADIUS_M", 150),
			PositionTimeout:  envDuration("POSITION_TIMEOUT", 15*time.Second),
			MaxFixAge:        envDuration("POSITION_MAX_FIX_AGE", 10*time.Second),
			FenceCacheTTL:    envDuration("FENCE_CACHE_TTL", 5*time.Minute),
			WirelessFallback: os.Getenv("DETECTION_WIRELESS_FALLBACK") == "true",
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
