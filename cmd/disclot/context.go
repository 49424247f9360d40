package main

import (
	"log/slog"
	"strings"
	"sync"

	"disclot/internal/config"
	"disclot/internal/export"
	"disclot/internal/exportlog"
	"disclot/internal/logging"
	"disclot/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
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
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.loggerOnce.Do(func() {
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// withStore runs fn against an exclusively locked store.
func (c *commandContext) withStore(fn func(*config.Config, *store.Store) error) error {
	return c.withOpenedStore(store.Open, fn)
}

// withSharedStore runs fn against a read-locked store.
func (c *commandContext) withSharedStore(fn func(*config.Config, *store.Store) error) error {
	return c.withOpenedStore(store.OpenShared, fn)
}

func (c *commandContext) withOpenedStore(open func(*config.Config, *slog.Logger) (*store.Store, error), fn func(*config.Config, *store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	s, err := open(cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(cfg, s)
}

// withExporter runs fn with an exporter backed by the history ledger.
func (c *commandContext) withExporter(fn func(*config.Config, *export.Exporter) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}
	ledger, err := exportlog.Open(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()
	return fn(cfg, export.New(cfg, logger, ledger))
}

// withLedger runs fn against the export history ledger alone.
func (c *commandContext) withLedger(fn func(*exportlog.Ledger) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	ledger, err := exportlog.Open(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()
	return fn(ledger)
}
