package config_test

import (
	"testing"

	"stayops/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.InDelta(t, 0.05, cfg.Pricing.ServiceFeeRate, 1e-9)
	assert.Equal(t, 730, cfg.Pricing.MaxHorizonDays)
	assert.Equal(t, "booking.events", cfg.Kafka.BookingTopic)
	assert.Equal(t, int64(4), cfg.Kafka.Concurrency)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("PRICING_SERVICE_FEE_RATE", "0.1")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.InDelta(t, 0.1, cfg.Pricing.ServiceFeeRate, 1e-9)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "fee of one hundred percent", env: map[string]string{"PRICING_SERVICE_FEE_RATE": "1"}},
		{name: "zero fee", env: map[string]string{"PRICING_SERVICE_FEE_RATE": "0"}},
		{name: "negative fee", env: map[string]string{"PRICING_SERVICE_FEE_RATE": "-0.1"}},
		{name: "no horizon", env: map[string]string{"PRICING_MAX_HORIZON_DAYS": "0"}},
		{name: "limiter without budget", env: map[string]string{"APP_RATE_LIMITER_ENABLE": "true"}},
		{name: "unparsable number", env: map[string]string{"PRICING_MAX_HORIZON_DAYS": "soon"}},
		{name: "no workers", env: map[string]string{"KAFKA_CONCURRENCY": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
