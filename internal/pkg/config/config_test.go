package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 100*time.Hour, cfg.JWTExpire)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "songcontest", cfg.Mongo.Database)
	assert.False(t, cfg.Mongo.Transactions)
	assert.Equal(t, time.Minute, cfg.Votes.TallyCacheTTL)
	assert.Equal(t, 4, cfg.Votes.AuditWorkers)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("MONGO_TRANSACTIONS", "true")
	t.Setenv("TALLY_CACHE_TTL", "30s")

	cfg, err := Load(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.Mongo.Transactions)
	assert.Equal(t, 30*time.Second, cfg.Votes.TallyCacheTTL)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	_, err := Load(context.Background(), "")
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contest.env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=fromfile\nAUDIT_WORKERS=2\n"), 0o600))

	// Registers cleanup for keys the file is about to set.
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUDIT_WORKERS", "")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("AUDIT_WORKERS")

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.JWTSecret)
	assert.Equal(t, 2, cfg.Votes.AuditWorkers)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}
