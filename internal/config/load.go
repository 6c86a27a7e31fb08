package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"digitime/internal/errors"
)

// newViperInstance creates a viper instance with defaults and DIGITIME_ env binding.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("DIGITIME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

func isConfigNotFoundError(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound) || stderrors.Is(err, os.ErrNotExist)
}

// Load reads configuration with the following precedence (highest first):
//  1. overrides (command-line flags)
//  2. DIGITIME_* environment variables
//  3. the file at path, or the default config file when path is empty
//  4. built-in defaults
//
// A missing default config file is not an error; a missing explicit path is.
func Load(ctx context.Context, path string, overrides Overrides) (*Config, error) {
	v := newViperInstance()

	if err := readConfigFile(v, path); err != nil {
		return nil, err
	}
	applyOverrides(v, overrides)

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("config_file", v.ConfigFileUsed()).
		Str("clock.format", cfg.Clock.Format).
		Dur("stopwatch.interval", cfg.Stopwatch.Interval).
		Dur("countdown.focus", cfg.Countdown.Focus).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", path)
		}
		return nil
	}

	defaultPath, err := Path()
	if err != nil {
		return nil
	}
	if _, statErr := os.Stat(defaultPath); statErr != nil {
		return nil
	}
	v.SetConfigFile(defaultPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read config file")
	}
	return nil
}

func applyOverrides(v *viper.Viper, overrides Overrides) {
	if overrides.Format != "" {
		v.Set("clock.format", overrides.Format)
	}
	if overrides.Style != "" {
		v.Set("clock.style", overrides.Style)
	}
	if overrides.View != "" {
		v.Set("ui.view", overrides.View)
	}
}
