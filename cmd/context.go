package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/gitcommits-mcp/config"
	"github.com/masmgr/gitcommits-mcp/internal/commits"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
type CommandContext struct {
	Config  *config.Config
	Service *commits.Service
}

// NewCommandContext loads configuration and builds the commit query service.
// Query diagnostics go to stderr.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &CommandContext{
		Config:  cfg,
		Service: commits.NewService(cfg.Query, cfg.Filters, os.Stderr),
	}, nil
}
