package cmd

import (
	"time"

	"github.com/masmgr/gitcommits-mcp/internal/commits"
	"github.com/masmgr/gitcommits-mcp/internal/output"
	"github.com/urfave/cli/v2"
)

// CommitsCmd returns the commits command.
func CommitsCmd() *cli.Command {
	return &cli.Command{
		Name:    "commits",
		Aliases: []string{"log"},
		Usage:   "Print commit history using the same query as the get_commits tool",
		Flags:   commitsFlags(),
		Action:  commitsAction,
	}
}

func commitsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch or revision to read",
			Value:   "HEAD",
		},
		&cli.StringFlag{
			Name:  "since",
			Usage: "Only commits authored at or after this ISO 8601 date",
		},
		&cli.StringFlag{
			Name:  "until",
			Usage: "Only commits authored at or before this ISO 8601 date",
		},
		&cli.IntFlag{
			Name:  "skip",
			Usage: "Number of matching commits to skip",
		},
		&cli.IntFlag{
			Name:    "max-count",
			Aliases: []string{"n"},
			Usage:   "Maximum number of commits (default from config, 50)",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns of paths a commit must touch (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of paths to ignore (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "grep",
			Usage: "Case-insensitive message regex (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

func commitsAction(c *cli.Context) error {
	cmdCtx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	req := commits.Request{
		RepoPath: c.String("repo"),
		Branch:   c.String("branch"),
		Since:    c.String("since"),
		Until:    c.String("until"),
		Skip:     c.Int("skip"),
		MaxCount: c.Int("max-count"),
		Grep:     c.StringSlice("grep"),
	}
	result := cmdCtx.Service.Query(c.Context, req)

	report := &output.CommitListReport{
		RepoPath:    req.RepoPath,
		Branch:      req.Branch,
		Since:       req.Since,
		Until:       req.Until,
		GeneratedAt: time.Now(),
		Result:      result,
	}

	format := getOutputFormat(c.String("format"))
	return output.NewCommitListWriter(format).Write(report, output.OutputOptions{
		Format:     format,
		OutputPath: c.String("output"),
	})
}
