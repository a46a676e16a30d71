package postgres

//nolint:revive
import (
	"hotelops/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 20
	postgresConnMaxIdleTime   = 5 * time.Minute
)

// Connection splits reads from writes. Every unit of work that mutates state runs on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresConnection("read", config.DB.Postgres.Read, config),
		Write: CreatePostgresConnection("write", config.DB.Postgres.Write, config),
	}
}

// DatabaseName applies the optional environment prefix.
func DatabaseName(config *config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

// DSN renders a lib/pq connection URL for endpoint. extra carries driver options such as the migrations table.
func DSN(config *config.Config, endpoint config.PostgresEndpoint, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", endpoint.SSLMode)

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + DatabaseName(config, endpoint.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// CreatePostgresConnection retries MaxRetry times and exits when the database never answers.
func CreatePostgresConnection(name string, endpoint config.PostgresEndpoint, config *config.Config) *sqlx.DB {
	dsn := DSN(config, endpoint, nil)
	dbName := DatabaseName(config, endpoint.Name)

	for retry := range max(config.DB.Postgres.MaxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxIdleTime(postgresConnMaxIdleTime)

			log.Info().
				Str("name", name).
				Str("host", endpoint.Host).
				Str("dbName", dbName).
				Msg("Connected to database")

			return sqlDB
		}

		log.Error().
			Err(err).
			Str("name", name).
			Str("host", endpoint.Host).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Str("dbName", dbName).Msg("Database unreachable")

	return nil
}
