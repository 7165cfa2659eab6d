package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"studentcard/internal/codec"
	"studentcard/internal/config"
	"studentcard/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	sessionID string
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		sessionID:  uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// logger builds a component logger writing to the command's stderr.
func (c *commandContext) logger(cmd *cobra.Command, component string) *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil {
		return logging.NewNop()
	}
	base, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr(), c.sessionID)
	if err != nil {
		return logging.NewNop()
	}
	return logging.NewComponentLogger(base, component)
}

// format resolves an explicit --format value, falling back to output.format.
func (c *commandContext) format(flag string) (codec.Format, error) {
	if strings.TrimSpace(flag) != "" {
		return codec.ParseFormat(flag)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return codec.ParseFormat(cfg.Output.Format)
}

func formatFlagUsage() string {
	return "Interchange format: " + codec.FormatNames() + " (default from config)"
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
