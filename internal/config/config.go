package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"blackjack-sim/internal/util"
)

const defaultRounds = 10

// Config provides configuration for the blackjack simulator
type Config struct {
	loaded bool
	Rounds int   `yaml:"rounds" envconfig:"rounds"`
	Seed   int64 `yaml:"seed" envconfig:"seed"`
	Log    struct {
		Level  string `yaml:"level" envconfig:"log_level"`
		Format string `yaml:"format" envconfig:"log_format"`
	}
}

var config Config

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
// A missing config file is not an error; the defaults and environment variables still apply
func Load() error {
	config = Config{
		Rounds: defaultRounds,
	}

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
