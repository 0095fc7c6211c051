// Package config loads trafdat's server configuration from defaults, an
// optional config file, and environment variables. Command-line flags are
// not read by this package.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the trafdat archive server.
type Config struct {
	BindAddress            string   `mapstructure:"bind_address" json:"bind_address" yaml:"bind_address"`
	DefaultDistrict        string   `mapstructure:"default_district" json:"default_district" yaml:"default_district"`
	TrafficRoot            string   `mapstructure:"traffic_root" json:"traffic_root" yaml:"traffic_root"`
	ConfigRoot             string   `mapstructure:"config_root" json:"config_root" yaml:"config_root"`
	LogLevel               string   `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
	LogJSON                bool     `mapstructure:"log_json" json:"log_json" yaml:"log_json"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds"`
	IgnorePatterns         []string `mapstructure:"ignore_patterns" json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"`
}

// ToYAML renders the effective configuration as YAML, for diagnostic
// output (trafdat config) and operators comparing it against a config
// file on disk.
func (c Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

var defaultConfig = Config{
	BindAddress:            "0.0.0.0:8080",
	DefaultDistrict:        "tms",
	TrafficRoot:            "/var/lib/iris/traffic",
	ConfigRoot:             "/var/lib/iris/metro_config",
	LogLevel:               "info",
	LogJSON:                false,
	ShutdownTimeoutSeconds: 10,
}

// Load reads configuration from (in increasing precedence) built-in
// defaults, a config file, and TRAFDAT_-prefixed environment variables.
// The config file is explicitFile if non-empty (failing to read it is an
// error); otherwise a file named trafdat.* is looked up in ".",
// "$HOME/.trafdat" and "/etc/trafdat", and may be absent. The merged
// document is validated against the embedded JSON Schema before being
// returned.
func Load(explicitFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("bind_address", defaultConfig.BindAddress)
	v.SetDefault("default_district", defaultConfig.DefaultDistrict)
	v.SetDefault("traffic_root", defaultConfig.TrafficRoot)
	v.SetDefault("config_root", defaultConfig.ConfigRoot)
	v.SetDefault("log_level", defaultConfig.LogLevel)
	v.SetDefault("log_json", defaultConfig.LogJSON)
	v.SetDefault("shutdown_timeout_seconds", defaultConfig.ShutdownTimeoutSeconds)
	v.SetDefault("ignore_patterns", defaultConfig.IgnorePatterns)

	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
	} else {
		v.SetConfigName("trafdat")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.trafdat")
		v.AddConfigPath("/etc/trafdat")
	}

	v.SetEnvPrefix("TRAFDAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicitFile != "" {
			return nil, fmt.Errorf("reading config file %s: %w", explicitFile, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
