package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, int32(10), cfg.DB.MaxConns)
	assert.Empty(t, cfg.Migrations.Dir)
	assert.Empty(t, cfg.Migrations.Table)
	assert.False(t, cfg.Search.Enabled)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "wallet")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("MIGRATIONS_TABLE", "wallet_schema_migrations")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, "wallet_schema_migrations", cfg.Migrations.Table)
	assert.Equal(t, "postgres://postgres:postgres@db:5432/wallet?sslmode=disable", cfg.PostgresDSN())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestPostgresDSN_EscapesCredentials(t *testing.T) {
	cfg := &Config{DB: Database{User: "app", Password: "p@ss/word", Host: "db", Port: "5432", Name: "wallet", SSLMode: "disable"}}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/wallet?sslmode=disable", cfg.PostgresDSN())
}

func TestSearch_AddrList(t *testing.T) {
	s := Search{Addrs: " http://es1:9200, ,http://es2:9200 "}
	assert.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, s.AddrList())
}

func TestMigrations_Or(t *testing.T) {
	def := Migrations{Dir: "db/migrations/wallet", Table: "wallet_schema_migrations"}

	assert.Equal(t, def, Migrations{}.Or(def))
	assert.Equal(t,
		Migrations{Dir: "db/migrations/wallet", Table: "custom"},
		Migrations{Table: "custom"}.Or(def))
}
