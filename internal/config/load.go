package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from defaults, an optional config.yaml in
// the working directory, and RECALLBOX_-prefixed environment variables,
// in increasing order of precedence. When no config file exists yet the
// effective defaults are written out so the user has a file to edit.
// Returns a validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("cards.dir", "cards")
	v.SetDefault("data.file", "data.json")
	v.SetDefault("study.units_per_theme", 10)
	v.SetDefault("study.review_validated", 3)
	v.SetDefault("study.valid_streak_days", 3)
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("server.log_level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RECALLBOX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// First run: materialize the defaults for editing.
		if werr := v.SafeWriteConfig(); werr != nil {
			var exists viper.ConfigFileAlreadyExistsError
			if !errors.As(werr, &exists) {
				return nil, fmt.Errorf("writing default config file: %w", werr)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
