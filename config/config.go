// Package config loads runlens configuration with Viper: TOML file,
// RUNLENS_-prefixed environment variables, and compiled-in defaults, in
// that order of precedence.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config is the full runlens configuration tree.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Domains  DomainsConfig  `mapstructure:"domains"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the suggest service HTTP listener.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DatabaseConfig points at the execution database the domain provider reads.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DomainsConfig tunes dynamic-domain refreshing.
type DomainsConfig struct {
	// RefreshDebounceMS coalesces bursts of database file events into one
	// domain reload.
	RefreshDebounceMS int `mapstructure:"refresh_debounce_ms"`
}

// LogConfig selects log output format.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// SetDefaults installs default values on a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "127.0.0.1:8734")
	v.SetDefault("database.path", "runlens.db")
	v.SetDefault("domains.refresh_debounce_ms", 500)
	v.SetDefault("log.json", false)
}

// Load reads configuration from the standard locations: ./runlens.toml,
// $HOME/.runlens/runlens.toml, plus RUNLENS_ environment variables. A
// missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("runlens")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.runlens")

	v.SetEnvPrefix("RUNLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	return unmarshal(v)
}

// LoadFromFile loads configuration from an explicit file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}
