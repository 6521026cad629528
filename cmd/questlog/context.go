package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"questlog/internal/backend"
	"questlog/internal/config"
	"questlog/internal/idcache"
	"questlog/internal/logging"
	"questlog/internal/reconcile"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withClient hands fn a configured backend client for commands that only
// talk to the catalog.
func (c *commandContext) withClient(cmd *cobra.Command, fn func(ctx context.Context, client *backend.Client) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	client, err := newBackendClient(cfg, logger)
	if err != nil {
		return err
	}
	return fn(cmd.Context(), client)
}

// withEngine hands fn a reconciliation engine backed by the configured
// client and id cache. The cache store is closed when fn returns.
func (c *commandContext) withEngine(cmd *cobra.Command, fn func(ctx context.Context, engine *reconcile.Engine) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	client, err := newBackendClient(cfg, logger)
	if err != nil {
		return err
	}
	store, err := idcache.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	engine, err := reconcile.New(ctx, client, store, logger)
	if err != nil {
		return err
	}
	return fn(ctx, engine)
}

func newBackendClient(cfg *config.Config, logger *slog.Logger) (*backend.Client, error) {
	return backend.New(backend.Options{
		BaseURL: cfg.Backend.BaseURL,
		Token:   cfg.Backend.APIToken,
		Endpoints: backend.Endpoints{
			Questions:      cfg.Endpoints.Questions,
			QuestionCreate: cfg.Endpoints.QuestionCreate,
			QuestionUpdate: cfg.Endpoints.QuestionUpdate,
			QuestionDelete: cfg.Endpoints.QuestionDelete,
			ProgressList:   cfg.Endpoints.ProgressList,
			ProgressGet:    cfg.Endpoints.ProgressGet,
			ProgressCreate: cfg.Endpoints.ProgressCreate,
			ProgressUpdate: cfg.Endpoints.ProgressUpdate,
		},
		Timeout: time.Duration(cfg.Backend.RequestTimeout) * time.Second,
		Logger:  logger,
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
