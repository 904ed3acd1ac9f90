package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds runtime settings. Every key can come from the config
// file, a PROMPTFORGE_-prefixed environment variable, or a flag.
type Config struct {
	DBPath      string `mapstructure:"db_path"`
	NoColor     bool   `mapstructure:"no_color"`
	Interactive bool   `mapstructure:"interactive"`
	Debug       bool   `mapstructure:"debug"`
}

// DefaultDBPath is the database location used when nothing overrides it.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "promptforge.db"
	}
	return filepath.Join(home, ".promptforge", "promptforge.db")
}

// Load reads configuration from the optional file path, the
// environment, and built-in defaults, in descending precedence.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("db_path", DefaultDBPath())
	v.SetDefault("no_color", false)
	v.SetDefault("interactive", true)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("PROMPTFORGE")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.promptforge")
	}

	// The config file is optional unless explicitly named.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
