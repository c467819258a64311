package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/cubewalk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubewalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
mode: cube
face_size: "50"
store:
  kind: redis
  redis:
    addr: cache:6379
    ttl: 1h
server:
  read_timeout: 30s
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "cube", cfg.Mode)
	assert.Equal(t, 50, cfg.FaceSize, "weakly typed input")
	assert.Equal(t, "redis", cfg.Store.Kind)
	assert.Equal(t, "cache:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.Store.Redis.TTL)
	assert.Equal(t, "cubewalk:result:", cfg.Store.Redis.Prefix, "defaults survive partial sections")
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Unknown Key", "colour: blue\n"},
		{"Bad Mode", "mode: sphere\n"},
		{"Bad Store", "store:\n  kind: s3\n"},
		{"Bad Duration", "server:\n  read_timeout: soon\n"},
		{"Bad Redis Address", "store:\n  redis:\n    addr: nowhere\n"},
		{"Not YAML", "mode: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cubewalk.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_EmptyDocumentKeepsDefaults(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Decode([]byte("# nothing\n"), &cfg))
	assert.Equal(t, config.Default(), cfg)
}
