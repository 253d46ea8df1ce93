package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/masmgr/gitcommits-mcp/internal/commits"
)

// CICommitWriter writes commit lists as NDJSON (one JSON object per line) for pipelines.
type CICommitWriter struct{}

// CISummary is the first line of CI output.
type CISummary struct {
	Type         string `json:"type"`
	Repo         string `json:"repo"`
	Branch       string `json:"branch"`
	TotalCommits int    `json:"totalCommits"`
	GeneratedAt  string `json:"generatedAt"`
}

// CICommitEntry represents a single commit line in CI output.
type CICommitEntry struct {
	Type string `json:"type"`
	commits.Record
}

// Write outputs the commit list as NDJSON.
func (w *CICommitWriter) Write(report *CommitListReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	summary := CISummary{
		Type:         "summary",
		Repo:         report.RepoPath,
		Branch:       report.Branch,
		TotalCommits: len(report.Result.Commits),
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, c := range report.Result.Commits {
		if err := writeNDJSONLine(out, CICommitEntry{Type: "commit", Record: c}); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
