package postgres_test

import (
	"hotelops/config"
	"hotelops/infras/postgres"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "staging_"

	endpoint := config.PostgresEndpoint{
		Host:     "db.internal",
		Port:     "5432",
		Username: "ops",
		Password: "p@ss:word",
		Name:     "hotel",
		Timezone: "Asia/Jakarta",
		SSLMode:  "disable",
	}

	dsn := postgres.DSN(cfg, endpoint, url.Values{"x-migrations-table": []string{"schema_migrations"}})

	parsed, err := url.Parse(dsn)
	assert.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "ops", parsed.User.Username())
	assert.Equal(t, "p@ss:word", password)
	assert.Equal(t, "db.internal:5432", parsed.Host)
	assert.Equal(t, "/staging_hotel", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "Asia/Jakarta", parsed.Query().Get("timezone"))
	assert.Equal(t, "schema_migrations", parsed.Query().Get("x-migrations-table"))
}

func TestDatabaseName(t *testing.T) {
	cfg := &config.Config{}

	assert.Equal(t, "hotel", postgres.DatabaseName(cfg, "hotel"))

	cfg.DB.Postgres.Prefix = "test_"

	assert.Equal(t, "test_hotel", postgres.DatabaseName(cfg, "hotel"))
}
