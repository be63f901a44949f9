package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/safecity/safecity-api/pkg/dataset"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, DEFAULT_DATASET_PATH, cfg.Dataset.Path)
	assert.Equal(t, dataset.FORMAT_AUTO, cfg.Dataset.Format)
	assert.Equal(t, time.RFC3339Nano, cfg.Logger.TimeFormat)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"API_PORT: 9090\nDATASET_PATH: data/predictions.csv.zst\nCORS_ALLOWED_ORIGINS: http://localhost:3000, http://127.0.0.1:3000\n"), 0644))

	t.Setenv("DATASET_FORMAT", "csv")
	t.Setenv("API_TIMEOUT", "5s")

	cfg, err := Load(newViper(dir))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "data/predictions.csv.zst", cfg.Dataset.Path)
	assert.Equal(t, dataset.FORMAT_CSV, cfg.Dataset.Format)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port out of range", env: map[string]string{"API_PORT": "70000"}},
		{name: "zero timeout", env: map[string]string{"API_TIMEOUT": "0s"}},
		{name: "unknown format", env: map[string]string{"DATASET_FORMAT": "pickle"}},
		{name: "log level", env: map[string]string{"LOG_LEVEL": "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(newViper(t.TempDir()))
			assert.Error(t, err)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}
