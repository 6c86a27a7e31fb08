package config

import (
	"os"
	"path/filepath"

	"digitime/internal/errors"
)

// AppName names the configuration directory and the binary.
const AppName = "digitime"

const configFileName = "config.yaml"

// Dir returns the DigiTime configuration directory, e.g. ~/.config/digitime.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return filepath.Join(configDir, AppName), nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", errors.Wrap(err, "resolve user config dir")
		}
		return "", errors.Wrap(homeErr, "resolve user config dir")
	}
	return filepath.Join(homeDir, ".config", AppName), nil
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LogDir returns the directory that holds rotated log files.
func LogDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}
