package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.App.Port)
	require.Equal(t, 30, cfg.Expiration.ThresholdDays)
	require.Equal(t, time.Hour, cfg.Expiration.SweepInterval)
	require.Equal(t, 10*time.Second, cfg.Signature.DuplicateWindow)
	require.Equal(t, 30*24*time.Hour, cfg.ExpirationThreshold())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("QUOTE_EXPIRATION_DAYS", "7")
	t.Setenv("SWEEP_INTERVAL", "15m")
	t.Setenv("SIGNATURE_DUPLICATE_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.App.Port)
	require.Equal(t, 7, cfg.Expiration.ThresholdDays)
	require.Equal(t, 15*time.Minute, cfg.Expiration.SweepInterval)
	require.Equal(t, 30*time.Second, cfg.Signature.DuplicateWindow)
	require.Equal(t, 7*24*time.Hour, cfg.ExpirationThreshold())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}
