package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config agrupa la configuración necesaria para correr la aplicación.
type Config struct {
	Port           string
	LogLevel       string
	RequestTimeout time.Duration
}

// Load lee variables de entorno (y un .env opcional) y valida lo mínimo indispensable.
func Load() (Config, error) {
	// Si no hay .env no pasa nada: se usan solo las variables de entorno.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.AutomaticEnv()

	port := strings.TrimSpace(v.GetString("PORT"))
	// Normalizamos por si alguien manda ":8080"
	port = strings.TrimPrefix(port, ":")
	if port == "" {
		port = "8080"
	}

	logLevel := strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL")))
	if logLevel == "" {
		logLevel = "info"
	}
	if _, err := zapcore.ParseLevel(logLevel); err != nil {
		return Config{}, errors.Wrapf(err, "invalid env var LOG_LEVEL")
	}

	requestTimeout := v.GetDuration("REQUEST_TIMEOUT")
	if requestTimeout <= 0 {
		return Config{}, errors.Errorf("invalid env var REQUEST_TIMEOUT: %q", v.GetString("REQUEST_TIMEOUT"))
	}

	return Config{
		Port:           port,
		LogLevel:       logLevel,
		RequestTimeout: requestTimeout,
	}, nil
}
