package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"splitpoker-server/internal/util"
)

// Config provides configuration for the split poker server
type Config struct {
	loaded     bool
	SigningKey string `yaml:"signingKey" envconfig:"signing_key"`
	PublicURL  string `yaml:"publicUrl" envconfig:"public_url"`
	Log        struct {
		Level             string `yaml:"level"`
		JSONFormat        bool   `yaml:"jsonFormat" envconfig:"json_format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		MinBet           int    `yaml:"minBet" envconfig:"min_bet"`
		StartingBankroll int    `yaml:"startingBankroll" envconfig:"starting_bankroll"`
		TurnPolicy       string `yaml:"turnPolicy" envconfig:"turn_policy"`
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

// Load will load the configuration. A missing config file is fine; the
// defaults and the environment cover everything.
func Load() error {
	config = defaults()

	configFile := util.Getenv("SPS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("sps", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaults() Config {
	var c Config
	c.PublicURL = "http://localhost:5000"
	c.Game.MinBet = 25
	c.Game.StartingBankroll = 1000
	c.Game.TurnPolicy = "perConfirm"
	return c
}
