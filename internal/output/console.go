package output

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
)

// ConsoleCommitWriter writes commit lists to the console.
type ConsoleCommitWriter struct{}

// Write outputs the commit list as a colored table.
func (w *ConsoleCommitWriter) Write(report *CommitListReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	green := color.New(color.FgGreen)
	green.Fprintf(out, "Commits on %s\n", report.Branch)
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Generated: %s\n", report.GeneratedAt.Format(time.RFC3339))
	if period := dateRangeLabel(report.Since, report.Until); period != "" {
		fmt.Fprintf(out, "Period: %s\n", period)
	}
	fmt.Fprintf(out, "Commits: %d\n\n", len(report.Result.Commits))

	if len(report.Result.Commits) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No commits found in the specified range.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSHA\tDate\tAuthor\tMessage")

	yellow := color.New(color.FgYellow).SprintFunc()
	for i, c := range report.Result.Commits {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			yellow(shortSHA(c.Hexsha)),
			c.AuthoredDate,
			c.AuthorName,
			truncateMessage(subject(c.Message), 60),
		)
	}

	return tw.Flush()
}
