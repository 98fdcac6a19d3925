package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	ManifestPath    string `mapstructure:"manifest_path"`
	DBPath          string `mapstructure:"db_path"`
	DaemonPort      int    `mapstructure:"daemon_port"`
	DebounceMs      int    `mapstructure:"debounce_ms"`
	PollIntervalSec int    `mapstructure:"poll_interval_sec"`
	BufferSize      int    `mapstructure:"buffer_size"`
}

var Default = Config{
	ManifestPath:    "sync.json",
	DaemonPort:      9101,
	DebounceMs:      500,
	PollIntervalSec: 300,
	BufferSize:      100,
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home dir: %w", err)
	}

	configDir := filepath.Join(home, ".drivesync")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetDefault("manifest_path", Default.ManifestPath)
	viper.SetDefault("db_path", filepath.Join(configDir, "drivesync.db"))
	viper.SetDefault("daemon_port", Default.DaemonPort)
	viper.SetDefault("debounce_ms", Default.DebounceMs)
	viper.SetDefault("poll_interval_sec", Default.PollIntervalSec)
	viper.SetDefault("buffer_size", Default.BufferSize)

	viper.SetEnvPrefix("DRIVESYNC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if ok := errors.As(err, &notFoundErr); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
