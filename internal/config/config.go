package config

import (
	"errors"
	"os"
	"pokerhands/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hand evaluator
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	// RejectDuplicateCards rejects hands that repeat a card, the parser itself accepts them
	RejectDuplicateCards bool `yaml:"rejectDuplicateCards" envconfig:"reject_duplicate_cards"`
	MaxHandsPerRequest   int  `yaml:"maxHandsPerRequest" envconfig:"max_hands_per_request"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{
		Addr:               ":5000",
		MaxHandsPerRequest: 100,
	}
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HANDEVAL_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("handeval", &cfg); err != nil {
		return err
	}

	if cfg.MaxHandsPerRequest <= 0 {
		return errors.New("maxHandsPerRequest must be greater than zero")
	}

	cfg.loaded = true
	config = cfg
	return nil
}
