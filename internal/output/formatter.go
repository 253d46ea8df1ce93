package output

import (
	"time"

	"github.com/masmgr/gitcommits-mcp/internal/commits"
)

// Compile-time interface conformance checks.
var (
	_ CommitListWriter = (*ConsoleCommitWriter)(nil)
	_ CommitListWriter = (*JSONCommitWriter)(nil)
	_ CommitListWriter = (*CSVCommitWriter)(nil)
	_ CommitListWriter = (*MarkdownCommitWriter)(nil)
	_ CommitListWriter = (*CICommitWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// CommitListReport holds a query result together with the query that produced it.
type CommitListReport struct {
	RepoPath    string
	Branch      string
	Since       string
	Until       string
	GeneratedAt time.Time
	Result      commits.Result
}

// CommitListWriter writes commit list reports.
type CommitListWriter interface {
	Write(report *CommitListReport, options OutputOptions) error
}

// NewCommitListWriter creates a commit list writer for the specified format.
func NewCommitListWriter(format OutputFormat) CommitListWriter {
	switch format {
	case FormatJSON:
		return &JSONCommitWriter{}
	case FormatCSV:
		return &CSVCommitWriter{}
	case FormatMarkdown:
		return &MarkdownCommitWriter{}
	case FormatCI:
		return &CICommitWriter{}
	default:
		return &ConsoleCommitWriter{}
	}
}
