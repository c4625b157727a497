// Package config loads the settings of the screen preview tooling.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/viper"

	"github.com/cometh-game/cometh-screens/pkg/logger"
)

// Default buffer capacities, terminating zero included.
const (
	DefaultTitleLength = 32
	DefaultMsgLength   = 64
)

// DisplayConfig sets the capacity of the screen buffers.
type DisplayConfig struct {
	TitleLength int `mapstructure:"title_length" yaml:"title_length"` // Title buffer capacity in bytes
	MsgLength   int `mapstructure:"msg_length" yaml:"msg_length"`     // Message buffer capacity in bytes
}

// Config wraps the entire configuration.
type Config struct {
	Display    DisplayConfig `mapstructure:"display" yaml:"display"`
	LogLevel   string        `mapstructure:"log_level" yaml:"log_level"`     // zap level name, e.g. "debug"
	TokensFile string        `mapstructure:"tokens_file" yaml:"tokens_file"` // Path to a YAML token list
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Display.TitleLength < 2 {
		errs = append(errs, fmt.Errorf("display.title_length must be at least 2, got %d", c.Display.TitleLength))
	}
	if c.Display.MsgLength < 2 {
		errs = append(errs, fmt.Errorf("display.msg_length must be at least 2, got %d", c.Display.MsgLength))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Load loads the config from the file path, falling back to env vars and defaults if the
// file does not exist. Env vars that are set override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := newViper()
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	return unmarshal(v)
}

// LoadEnv loads the config from the environment variables and defaults.
func LoadEnv() (*Config, error) {
	v := newViper()
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("display.title_length", DefaultTitleLength)
	v.SetDefault("display.msg_length", DefaultMsgLength)
	v.SetDefault("log_level", "info")

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// envBindings maps each config key to the environment variables that can provide its value,
// checked in order.
var envBindings = map[string][]string{
	"display.title_length": {"COMETH_DISPLAY_TITLE_LENGTH"},
	"display.msg_length":   {"COMETH_DISPLAY_MSG_LENGTH"},
	"log_level":            {"COMETH_LOG_LEVEL", "LOG_LEVEL"},
	"tokens_file":          {"COMETH_TOKENS_FILE"},
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
