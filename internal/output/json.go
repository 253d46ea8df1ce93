package output

import (
	"encoding/json"
	"fmt"
)

// JSONCommitWriter writes commit lists as JSON in the get_commits tool schema.
type JSONCommitWriter struct{}

// Write outputs the commit list as JSON.
func (w *JSONCommitWriter) Write(report *CommitListReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report.Result); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
