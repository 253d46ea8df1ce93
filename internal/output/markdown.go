package output

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownCommitWriter writes commit lists as Markdown.
type MarkdownCommitWriter struct{}

// Write outputs the commit list as a Markdown table.
func (w *MarkdownCommitWriter) Write(report *CommitListReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintf(out, "# Commits on `%s`\n\n", report.Branch)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Generated:** %s\n\n", report.GeneratedAt.Format(time.RFC3339))
	if period := dateRangeLabel(report.Since, report.Until); period != "" {
		fmt.Fprintf(out, "**Period:** %s\n\n", period)
	}
	fmt.Fprintf(out, "**Commits:** %d\n\n", len(report.Result.Commits))

	if len(report.Result.Commits) == 0 {
		fmt.Fprintln(out, "_No commits found in the specified range._")
		return nil
	}

	fmt.Fprintln(out, "| # | SHA | Date | Author | Message |")
	fmt.Fprintln(out, "|---|-----|------|--------|---------|")
	for i, c := range report.Result.Commits {
		fmt.Fprintf(out, "| %d | `%s` | %s | %s | %s |\n",
			i+1, shortSHA(c.Hexsha), c.AuthoredDate,
			escapeMarkdown(c.AuthorName), escapeMarkdown(subject(c.Message)))
	}

	return nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
