package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeBackend(); err != nil {
		return err
	}
	c.normalizeEndpoints()
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeBackend() error {
	c.Backend.BaseURL = strings.TrimRight(strings.TrimSpace(c.Backend.BaseURL), "/")
	c.Backend.APIToken = strings.TrimSpace(c.Backend.APIToken)
	if c.Backend.RequestTimeout <= 0 {
		c.Backend.RequestTimeout = defaultRequestTimeout
	}
	return nil
}

func (c *Config) normalizeEndpoints() {
	fill := func(value *string, fallback string) {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			*value = fallback
		}
	}
	fill(&c.Endpoints.Questions, defaultQuestionsEndpoint)
	fill(&c.Endpoints.QuestionCreate, defaultQuestionCreateEndpoint)
	fill(&c.Endpoints.QuestionUpdate, defaultQuestionUpdateEndpoint)
	fill(&c.Endpoints.QuestionDelete, defaultQuestionDeleteEndpoint)
	fill(&c.Endpoints.ProgressList, defaultProgressListEndpoint)
	fill(&c.Endpoints.ProgressGet, defaultProgressGetEndpoint)
	fill(&c.Endpoints.ProgressCreate, defaultProgressCreateEndpoint)
	fill(&c.Endpoints.ProgressUpdate, defaultProgressUpdateEndpoint)
}

func (c *Config) normalizeCache() error {
	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	if c.Cache.Backend == "" {
		c.Cache.Backend = defaultCacheBackend
	}

	if strings.TrimSpace(c.Cache.Path) == "" {
		switch c.Cache.Backend {
		case "sqlite":
			c.Cache.Path = defaultCacheSQLitePath
		default:
			c.Cache.Path = defaultCacheJSONPath
		}
	}

	var err error
	if c.Cache.Path, err = expandPath(c.Cache.Path); err != nil {
		return fmt.Errorf("cache.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if dir, err := expandPath(c.Logging.Dir); err == nil {
		c.Logging.Dir = dir
	}
}
