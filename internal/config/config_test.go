package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blog-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Server.ExposeRawErrors)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "blog", cfg.Database.Name)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 100, cfg.Blog.LatestMaxLimit)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "blog_test")
	t.Setenv("EXPOSE_RAW_ERRORS", "false")
	t.Setenv("BLOG_LATEST_MAX_LIMIT", "10")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "blog_test", cfg.Database.Name)
	assert.False(t, cfg.Server.ExposeRawErrors)
	assert.Equal(t, 10, cfg.Blog.LatestMaxLimit)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "server:\n  port: \"7070\"\ndatabase:\n  name: from_yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "from_yaml", cfg.Database.Name)
	assert.Equal(t, "localhost", cfg.Database.Host)
}

func TestLoad_InvalidLatestLimit(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("BLOG_LATEST_MAX_LIMIT", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	db := config.DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", Name: "blog", SSLMode: "require",
	}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=blog sslmode=require", db.GetDSN())
}
