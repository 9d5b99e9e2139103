// Package config loads command line settings using Viper
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix          = "TSUTIL"
	DefaultStoragePath = "./tsutil.db"

	DriverBuntDB = "buntdb"
	DriverSQLite = "sqlite"
)

// Config holds the command line configuration
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	CSV   CSVConfig   `mapstructure:"csv"`
	Store StoreConfig `mapstructure:"store"`
}

// LogConfig configures the zerolog console output
type LogConfig struct {
	Level      string `mapstructure:"level"`
	TimeLayout string `mapstructure:"time_layout"`
	Colored    bool   `mapstructure:"colored"`
	JSON       bool   `mapstructure:"json"`
}

// CSVConfig selects the columns read from series files
type CSVConfig struct {
	TimeColumn  string `mapstructure:"time_column"`
	ValueColumn string `mapstructure:"value_column"`
	TimeUnit    string `mapstructure:"time_unit"` // empty keeps integer ticks as is
}

// StoreConfig selects and locates the series database
type StoreConfig struct {
	Driver string `mapstructure:"driver"` // buntdb or sqlite
	Path   string `mapstructure:"path"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.time_layout", "2006-01-02 15:04:05")
	v.SetDefault("log.colored", true)
	v.SetDefault("log.json", false)
	v.SetDefault("csv.time_column", "time")
	v.SetDefault("csv.value_column", "value")
	v.SetDefault("csv.time_unit", "")
	v.SetDefault("store.driver", DriverBuntDB)
	v.SetDefault("store.path", DefaultStoragePath)
}

// Load reads defaults, the optional YAML file at path and TSUTIL_* environment
// variables, in increasing priority. TSUTIL_LOG_LEVEL overrides log.level.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the commands cannot work with
func (c *Config) Validate() error {
	if c.CSV.TimeColumn == "" || c.CSV.ValueColumn == "" {
		return errors.New("csv time and value columns must be set")
	}
	if c.Store.Path == "" {
		return errors.New("store path must be set")
	}
	if c.Store.Driver != DriverBuntDB && c.Store.Driver != DriverSQLite {
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}
