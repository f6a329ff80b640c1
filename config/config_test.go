package config

import (
	"testing"
	"time"

	"circlecheck/internal/domain/constants"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, constants.HookModeSync, cfg.Hook.Mode)
	assert.Equal(t, constants.StateStrategyAtomic, cfg.Geofence.StateStrategy)
	assert.False(t, cfg.Geofence.NotifyOnExit)
	assert.Equal(t, constants.PushProviderExpo, cfg.Push.Provider)
	assert.Equal(t, defaultExpoPushEndpoint, cfg.Push.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.Push.Timeout)
	assert.Nil(t, cfg.Metrics)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Hook:     &HookConfig{Mode: constants.HookModePubSub, Secret: "s3cret"},
		Geofence: &GeofenceConfig{StateStrategy: constants.StateStrategyReadWrite, NotifyOnExit: true},
		Push:     &PushConfig{Provider: constants.PushProviderFirebase, Timeout: time.Second},
		Metrics:  &MetricsConfig{Enabled: true},
	}
	cfg.applyDefaults()

	assert.Equal(t, constants.HookModePubSub, cfg.Hook.Mode)
	assert.Equal(t, "s3cret", cfg.Hook.Secret)
	assert.Equal(t, constants.StateStrategyReadWrite, cfg.Geofence.StateStrategy)
	assert.True(t, cfg.Geofence.NotifyOnExit)
	assert.Empty(t, cfg.Push.Endpoint)
	assert.Equal(t, time.Second, cfg.Push.Timeout)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestValidateHook(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Postgres: &postgres.DBConn{}}
		cfg.applyDefaults()

		return cfg
	}

	t.Run("valid expo configuration", func(t *testing.T) {
		require.NoError(t, valid().ValidateHook())
	})

	t.Run("nil config", func(t *testing.T) {
		var cfg *Config
		require.Error(t, cfg.ValidateHook())
	})

	t.Run("missing postgres", func(t *testing.T) {
		cfg := valid()
		cfg.Postgres = nil
		assert.ErrorContains(t, cfg.ValidateHook(), "postgres")
	})

	t.Run("memory storage does not need postgres", func(t *testing.T) {
		cfg := valid()
		cfg.Postgres = nil
		cfg.Storage.Driver = constants.StorageDriverMemory
		assert.NoError(t, cfg.ValidateHook())
	})

	t.Run("missing expo endpoint", func(t *testing.T) {
		cfg := valid()
		cfg.Push.Endpoint = " "
		assert.ErrorContains(t, cfg.ValidateHook(), "expo")
	})

	t.Run("firebase without credentials", func(t *testing.T) {
		cfg := valid()
		cfg.Push.Provider = constants.PushProviderFirebase
		assert.ErrorContains(t, cfg.ValidateHook(), "firebase")
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := valid()
		cfg.Push.Provider = "carrier-pigeon"
		assert.ErrorContains(t, cfg.ValidateHook(), "unknown push provider")
	})

	t.Run("pubsub mode without pubsub", func(t *testing.T) {
		cfg := valid()
		cfg.Hook.Mode = constants.HookModePubSub
		assert.ErrorContains(t, cfg.ValidateHook(), "pubsub")
	})
}
