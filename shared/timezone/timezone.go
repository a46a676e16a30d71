package timezone

import (
	"hotelops/config"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No property timezone configured, using UTC")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load property timezone, falling back to UTC. Use IANA names like 'Asia/Jakarta'")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Info().Str("timezone", loc.String()).Msg("Property timezone initialized")
}

func location() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the wall clock of the property.
func Now() time.Time {
	return time.Now().In(location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

func GetLocation() *time.Location {
	return location()
}

// Format renders an instant on the property's wall clock.
func Format(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}

	return ToAppTime(t).Format(layout)
}
