package config_test

import (
	"testing"

	"github.com/changhyeonkim/member-registry/internal/config"
	"github.com/changhyeonkim/member-registry/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyDriverRejected(t *testing.T) {
	// Given: no .env.unit-test file and an explicitly empty driver
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("RATE_LIMIT_RPS", "0")

	// When
	cfg, err := config.Load("unit-test")

	// Then: empty STORAGE_DRIVER is not a valid driver
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_MemoryStorage(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := config.Load("unit-test")

	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.False(t, cfg.UsesDatabase())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr bool
	}{
		{
			name:   "test config is valid",
			mutate: func(cfg *config.Config) {},
		},
		{
			name:    "invalid port",
			mutate:  func(cfg *config.Config) { cfg.App.Port = 0 },
			wantErr: true,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *config.Config) { cfg.Storage.Driver = "mongo" },
			wantErr: true,
		},
		{
			name: "sqlite without path",
			mutate: func(cfg *config.Config) {
				cfg.Storage.Driver = config.StorageSQLite
				cfg.Database.SQLitePath = ""
			},
			wantErr: true,
		},
		{
			name: "oracle without credentials",
			mutate: func(cfg *config.Config) {
				cfg.Storage.Driver = config.StorageOracle
				cfg.Database.User = ""
				cfg.Database.Password = ""
			},
			wantErr: true,
		},
		{
			name: "oracle with credentials",
			mutate: func(cfg *config.Config) {
				cfg.Storage.Driver = config.StorageOracle
			},
		},
		{
			name: "rate limit without burst",
			mutate: func(cfg *config.Config) {
				cfg.RateLimit.RPS = 10
				cfg.RateLimit.Burst = 0
			},
			wantErr: true,
		},
		{
			name: "disabled rate limit ignores burst",
			mutate: func(cfg *config.Config) {
				cfg.RateLimit.RPS = 0
				cfg.RateLimit.Burst = 0
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testutil.NewTestConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
