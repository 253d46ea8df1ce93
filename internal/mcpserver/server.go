// Package mcpserver exposes the commit query as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/masmgr/gitcommits-mcp/config"
	"github.com/masmgr/gitcommits-mcp/internal/commits"
)

// ToolName is the name clients use to call the commit query.
const ToolName = "get_commits"

// New creates an MCP server with the get_commits tool registered.
func New(cfg config.ServerConfig, svc *commits.Service) *server.MCPServer {
	s := server.NewMCPServer(cfg.Name, cfg.Version,
		server.WithToolCapabilities(false),
		server.WithInstructions(cfg.Instructions),
		server.WithRecovery(),
	)
	s.AddTool(CommitsTool(), HandleGetCommits(svc))
	return s
}

// CommitsTool describes the get_commits tool and its input and output schemas.
func CommitsTool() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription("Retrieves commit history from a specified git repository and branch. "+
			"Supports filtering by date range and pagination."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("repo_path",
			mcp.Required(),
			mcp.Description("Absolute path to the Git repository."),
		),
		mcp.WithString("branch",
			mcp.Required(),
			mcp.Description("The branch name to retrieve commits from."),
		),
		mcp.WithString("since",
			mcp.Description("The start date for the commit search (ISO 8601 format)."),
		),
		mcp.WithString("until",
			mcp.Description("The end date for the commit search (ISO 8601 format)."),
		),
		mcp.WithNumber("skip",
			mcp.DefaultNumber(0),
			mcp.Min(0),
			mcp.Description("The number of commits to skip (for pagination). Must be an integer."),
		),
		mcp.WithNumber("max_count",
			mcp.DefaultNumber(50),
			mcp.Min(1),
			mcp.Description("The maximum number of commits to return. Must be an integer."),
		),
		mcp.WithArray("paths",
			mcp.WithStringItems(),
			mcp.Description("Only return commits touching a file that matches one of these glob patterns."),
		),
		mcp.WithArray("grep",
			mcp.WithStringItems(),
			mcp.Description("Only return commits whose message matches one of these case-insensitive regular expressions."),
		),
		mcp.WithOutputSchema[commits.Result](),
	)
}

// HandleGetCommits forwards tool arguments to svc.Query and returns its result
// as structured content, with the same JSON as text for older clients.
func HandleGetCommits(svc *commits.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		req, err := requestFromArguments(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result := svc.Query(ctx, req)

		text, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("encode result: %w", err)
		}
		return mcp.NewToolResultStructured(result, string(text)), nil
	}
}

func requestFromArguments(request mcp.CallToolRequest) (commits.Request, error) {
	repoPath, err := request.RequireString("repo_path")
	if err != nil {
		return commits.Request{}, err
	}
	branch, err := request.RequireString("branch")
	if err != nil {
		return commits.Request{}, err
	}

	skip, err := integerArgument(request, "skip", 0)
	if err != nil {
		return commits.Request{}, err
	}
	maxCount, err := integerArgument(request, "max_count", 0)
	if err != nil {
		return commits.Request{}, err
	}

	return commits.Request{
		RepoPath: repoPath,
		Branch:   branch,
		Since:    request.GetString("since", ""),
		Until:    request.GetString("until", ""),
		Skip:     skip,
		MaxCount: maxCount,
		Paths:    request.GetStringSlice("paths", nil),
		Grep:     request.GetStringSlice("grep", nil),
	}, nil
}

// integerArgument reads a whole-number argument. JSON numbers arrive as
// float64, so fractional values are rejected rather than truncated.
func integerArgument(request mcp.CallToolRequest, key string, defaultValue int) (int, error) {
	if v, ok := request.GetArguments()[key].(float64); ok {
		if math.IsInf(v, 0) || v != math.Trunc(v) {
			return 0, fmt.Errorf("%s must be an integer, got %v", key, v)
		}
	}
	return request.GetInt(key, defaultValue), nil
}

// Serve runs the stdio transport until ctx is cancelled or stdin is closed.
// Transport errors are logged to stderr; stdout carries only protocol messages.
func Serve(ctx context.Context, s *server.MCPServer, stdin io.Reader, stdout, stderr io.Writer) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(log.New(stderr, "", log.LstdFlags))
	return stdio.Listen(ctx, stdin, stdout)
}
