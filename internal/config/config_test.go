package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, Config{Port: "8080", LogLevel: "info", RequestTimeout: 10 * time.Second}, cfg)
}

func TestLoad_CustomPort(t *testing.T) {
	tests := []struct {
		name string
		port string
		want string
	}{
		{"plain", "9090", "9090"},
		{"leading colon", ":9091", "9091"},
		{"spaces", " 9092 ", "9092"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			t.Setenv("LOG_LEVEL", "")
			t.Setenv("REQUEST_TIMEOUT", "")

			cfg, err := Load()

			require.NoError(t, err)
			require.Equal(t, tt.want, cfg.Port)
		})
	}
}

func TestLoad_LogLevel(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	t.Run("custom", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "DEBUG")

		cfg, err := Load()

		require.NoError(t, err)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")

		cfg, err := Load()

		require.Error(t, err)
		require.Contains(t, err.Error(), "LOG_LEVEL")
		require.Equal(t, Config{}, cfg)
	})
}

func TestLoad_RequestTimeout(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	t.Run("custom", func(t *testing.T) {
		t.Setenv("REQUEST_TIMEOUT", "3s")

		cfg, err := Load()

		require.NoError(t, err)
		require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, value := range []string{"soon", "0s", "-1s"} {
			t.Setenv("REQUEST_TIMEOUT", value)

			cfg, err := Load()

			require.Error(t, err, "REQUEST_TIMEOUT=%q", value)
			require.Contains(t, err.Error(), "REQUEST_TIMEOUT")
			require.Equal(t, Config{}, cfg)
		}
	})
}
