package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable for talking to the backend.
func (c *Config) Validate() error {
	if err := c.validateBackend(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateBackend() error {
	if c.Backend.BaseURL == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/questlog/config.toml"
		}
		return fmt.Errorf("backend.base_url is required. Set QUESTLOG_BASE_URL env var or edit %s (create with 'questlog config init')", defaultPath)
	}
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		return fmt.Errorf("backend.base_url must be an http(s) URL, got %q", c.Backend.BaseURL)
	}
	if c.Backend.APIToken == "" {
		return errors.New("backend.api_token is required. Set QUESTLOG_API_TOKEN env var or add it to the config file")
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("cache.backend must be \"json\" or \"sqlite\", got %q", c.Cache.Backend)
	}
	if c.Cache.Path == "" {
		return errors.New("cache.path must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
