package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.BindAddress)
	assert.Equal(t, "tms", cfg.DefaultDistrict)
	assert.Equal(t, "/var/lib/iris/traffic", cfg.TrafficRoot)
	assert.Equal(t, "/var/lib/iris/metro_config", cfg.ConfigRoot)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.ShutdownTimeoutSeconds)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trafdat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bind_address: "127.0.0.1:9090"
default_district: rtest
traffic_root: /data/traffic
config_root: /data/metro_config
log_level: DEBUG
log_json: true
shutdown_timeout_seconds: 3
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.BindAddress)
	assert.Equal(t, "rtest", cfg.DefaultDistrict)
	assert.Equal(t, "/data/traffic", cfg.TrafficRoot)
	assert.Equal(t, "/data/metro_config", cfg.ConfigRoot)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 3, cfg.ShutdownTimeoutSeconds)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := defaultConfig
	cfg.LogLevel = "verbose"
	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsMissingPort(t *testing.T) {
	cfg := defaultConfig
	cfg.BindAddress = "localhost"
	assert.Error(t, Validate(cfg))
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, Validate(defaultConfig))
}

func TestToYAMLRoundTrips(t *testing.T) {
	data, err := defaultConfig.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "bind_address: 0.0.0.0:8080")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, defaultConfig, decoded)
}
