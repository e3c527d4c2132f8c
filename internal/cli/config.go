package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/relsweep/relsweep/pkg/errors"
)

// fileConfig holds optional defaults read from the TOML config file.
// Flags override any value set here.
type fileConfig struct {
	Token      string `toml:"token"`
	PageSize   int    `toml:"page_size"`
	MaxRetries int    `toml:"max_retries"`
	RetryDelay string `toml:"retry_delay"` // Go duration string, e.g. "2s"
}

// retryDelay parses the configured delay, or returns zero when unset.
func (c fileConfig) retryDelay() (time.Duration, error) {
	if c.RetryDelay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.RetryDelay)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "invalid retry_delay %q", c.RetryDelay)
	}
	return d, nil
}

// defaultConfigPath returns ~/.config/relsweep/config.toml, or empty when
// the home directory cannot be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// loadConfig reads the config file at path. A missing file is only an
// error when the path was given explicitly; the default location is
// allowed to be absent.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "reading config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parsing config %s", path)
	}
	return cfg, nil
}
