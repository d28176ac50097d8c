package main

import (
	"log/slog"

	"panelbox/internal/config"
	"panelbox/internal/logging"
)

// commandContext carries the lazily-loaded configuration and logger shared
// by every subcommand.
type commandContext struct {
	configFlag *string
	levelFlag  *string

	cfg    *config.Config
	logger *slog.Logger
}

func newCommandContext(configFlag, levelFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag, levelFlag: levelFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, _, _, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}
	if *c.levelFlag != "" {
		cfg.Logging.Level = *c.levelFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return c.logger, nil
}
