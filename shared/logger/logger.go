package logger

import (
	"hotelops/config"
	"hotelops/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a human readable logger until the configuration is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies the configured level. Production emits JSON lines tagged with the app name.
// An empty or unknown level logs at info.
func SetLogLevel(config *config.Config) {
	if config.Server.Env == constant.ServerEnvProduction {
		log.Logger = newJSONLogger(os.Stdout, config.App.Name)
	}

	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	log.Debug().Str("loglevel", level.String()).Str("env", config.Server.Env).Msg("Log level configured")
}

func newJSONLogger(out io.Writer, app string) zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Str("app", app).Logger()
}
