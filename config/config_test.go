package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: academy
http:
  port: 8080
  timeouts:
    handlerTimeout: 5s
postgres:
  master:
    host: db
    port: "5432"
    userName: academy
    password: secret
  database: academy
auth:
  bcryptCost: 10
upload:
  publicBaseUrl: https://cdn.example.com/uploads/
`

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "academy.yaml"), []byte(testYAML), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("POSTGRES_MASTER_HOST", "primary.internal")
	t.Setenv("AUTH_BCRYPTCOST", "11")

	cfg, err := LoadWithEnv[Config]("academy", rel)
	require.NoError(t, err)

	assert.Equal(t, "primary.internal", cfg.Postgres.Master.Host)
	assert.Equal(t, "academy", cfg.Postgres.Master.UserName)
	assert.Equal(t, 11, cfg.Auth.BcryptCost)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.HandlerTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultHandlerTimeout, cfg.HTTP.Timeouts.HandlerTimeout)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultLoginRateLimit, cfg.Auth.LoginRateLimit)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxFileSize)
	assert.Equal(t, 10, cfg.Upload.MaxFiles)
	assert.Equal(t, defaultPublicBaseURL, cfg.Upload.PublicBaseURL)
}

func TestApplyDefaults_TrimsPublicBaseURL(t *testing.T) {
	cfg := &Config{Upload: &UploadConfig{PublicBaseURL: "https://cdn.example.com/uploads/"}}
	cfg.applyDefaults()

	assert.Equal(t, "https://cdn.example.com/uploads", cfg.Upload.PublicBaseURL)
}

func TestPostgresConfig_DSN(t *testing.T) {
	pg := &PostgresConfig{Database: "academy", TimeZone: "UTC"}
	dsn := pg.DSN(ConnectionConfig{Host: "db", Port: "5432", UserName: "u", Password: "p"})

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=academy sslmode=disable TimeZone=UTC", dsn)
}
