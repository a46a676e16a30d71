package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hotelops/config"
	"hotelops/infras/postgres"
	"hotelops/migrations"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStepUp Direction = "step-up"
	DirectionDrop   Direction = "drop"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

func connectionString(config *config.Config) string {
	return postgres.DSN(config, config.DB.Postgres.Write, url.Values{
		"x-migrations-table": []string{config.DB.Postgres.MigrationTable},
	})
}

// getConnection reads the schema from the embedded migration files so the binary migrates from any working directory.
func getConnection(config *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, migrations.Dir)
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, connectionString(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, direction Direction) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch direction {
	case DirectionUp:
		err = mig.Up()
	case DirectionDown:
		err = mig.Steps(-1)
	case DirectionStepUp:
		err = mig.Steps(1)
	case DirectionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownDirection, direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", direction, err)
	}

	version, dirty, _ := mig.Version()

	log.Info().
		Str("direction", string(direction)).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Database migrations completed")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, DirectionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, DirectionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, DirectionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, DirectionDrop)
}
