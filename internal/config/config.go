package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	FirstPlayer string `yaml:"first-player" env:"TICTACTOE_FIRST_PLAYER" env-default:""`
	NoColor     bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR" env-default:"false"`
	Events      Events `yaml:"events"`
}

// Events - Redis pub/sub channel that receives every turn of the game.
type Events struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_EVENTS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TICTACTOE_EVENTS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TICTACTOE_EVENTS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"TICTACTOE_EVENTS_CHANNEL" env-default:"tictactoe:events"`
}

// MustLoad - load all configurations from the yml file at path. See Load for a missing file.
func MustLoad(path string, required bool) *Config {
	config, err := Load(path, required)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the yml file at path, then the environment. A missing file is an error when required,
// otherwise only the environment and defaults are used.
func Load(path string, required bool) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); !required && errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

func (that *Events) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
