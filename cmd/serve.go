package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/masmgr/gitcommits-mcp/internal/mcpserver"
	"github.com/urfave/cli/v2"
)

// ServeCmd returns the serve command.
func ServeCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Run the MCP server on stdin/stdout",
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	srv := mcpserver.New(cmdCtx.Config.Server, cmdCtx.Service)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = mcpserver.Serve(ctx, srv, os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
