package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smartbus/internal/shared/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
	assert.Equal(t, 15*time.Minute, cfg.Redis.SeatHoldTTL)
	assert.Equal(t, "booking-events", cfg.Kafka.Topic)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Contains(t, cfg.Database.DSN, "dbname=smartbus_db")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_SEAT_HOLD_TTL", "5m")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.GetServerAddress())
	assert.Equal(t, 5*time.Minute, cfg.Redis.SeatHoldTTL)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestGinModeHelpers(t *testing.T) {
	t.Setenv("GIN_MODE", "release")

	cfg := config.Load()

	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}
