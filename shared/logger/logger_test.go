package logger_test

import (
	"bytes"
	"errors"
	"hotelops/config"
	"hotelops/shared/constant"
	"hotelops/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("night audit failed"))

	assert.Contains(t, buf.String(), "night audit failed")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLevel zerolog.Level
	}{
		{name: "trace", logLevel: "trace", wantLevel: zerolog.TraceLevel},
		{name: "debug", logLevel: "debug", wantLevel: zerolog.DebugLevel},
		{name: "warn", logLevel: "warn", wantLevel: zerolog.WarnLevel},
		{name: "error", logLevel: "error", wantLevel: zerolog.ErrorLevel},
		{name: "disabled", logLevel: "disabled", wantLevel: zerolog.Disabled},
		{name: "unknown falls back to info", logLevel: "verbose", wantLevel: zerolog.InfoLevel},
		{name: "empty falls back to info", logLevel: "", wantLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetLogLevel_ProductionWritesJSON(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "hotelops"

	logger.SetLogLevel(cfg)

	var buf bytes.Buffer
	log.Logger = log.Logger.Output(&buf)
	log.Info().Str("hotel_id", "hotel-1").Msg("business date advanced")

	assert.Contains(t, buf.String(), `"app":"hotelops"`)
	assert.Contains(t, buf.String(), `"hotel_id":"hotel-1"`)
}
