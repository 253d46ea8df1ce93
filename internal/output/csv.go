package output

import (
	"encoding/csv"
)

// CSVCommitWriter writes commit lists as CSV.
type CSVCommitWriter struct{}

// Write outputs the commit list as CSV.
func (w *CSVCommitWriter) Write(report *CommitListReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	writer := csv.NewWriter(out)

	headers := []string{"hexsha", "author_name", "author_email", "authored_date", "message"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, c := range report.Result.Commits {
		row := []string{c.Hexsha, c.AuthorName, c.AuthorEmail, c.AuthoredDate, c.Message}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
