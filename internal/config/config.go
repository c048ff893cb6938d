package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/RicGue02/LifeOS/internal/storage"
)

const envPrefix = "LIFEOS"

type Config struct {
	DBPath   string `mapstructure:"db_path"`
	LogMode  string `mapstructure:"log_mode"`
	LogFile  string `mapstructure:"log_file"`
	Timezone string `mapstructure:"timezone"`
}

// Load reads configuration from an optional config file and LIFEOS_* env vars.
// If file is empty, config.yaml is searched in $HOME/.lifeos and the working
// directory; a missing file is not an error.
func Load(file string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("get home dir: %w", err)
	}
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		return Config{}, err
	}
	v.SetDefault("db_path", dbPath)
	v.SetDefault("log_mode", "dev")
	v.SetDefault("log_file", "")
	v.SetDefault("timezone", "")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(home, ".lifeos"))
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to time.Local.
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
