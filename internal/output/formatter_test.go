package output

import "testing"

func TestNewCommitListWriter(t *testing.T) {
	tests := []struct {
		name   string
		format OutputFormat
	}{
		{name: "Console", format: FormatConsole},
		{name: "JSON", format: FormatJSON},
		{name: "CSV", format: FormatCSV},
		{name: "Markdown", format: FormatMarkdown},
		{name: "CI", format: FormatCI},
		{name: "Unknown defaults to Console", format: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := NewCommitListWriter(tt.format)
			if writer == nil {
				t.Fatal("NewCommitListWriter returned nil")
			}

			switch tt.format {
			case FormatJSON:
				if _, ok := writer.(*JSONCommitWriter); !ok {
					t.Errorf("Expected *JSONCommitWriter for format %q", tt.format)
				}
			case FormatCSV:
				if _, ok := writer.(*CSVCommitWriter); !ok {
					t.Errorf("Expected *CSVCommitWriter for format %q", tt.format)
				}
			case FormatMarkdown:
				if _, ok := writer.(*MarkdownCommitWriter); !ok {
					t.Errorf("Expected *MarkdownCommitWriter for format %q", tt.format)
				}
			case FormatCI:
				if _, ok := writer.(*CICommitWriter); !ok {
					t.Errorf("Expected *CICommitWriter for format %q", tt.format)
				}
			default:
				if _, ok := writer.(*ConsoleCommitWriter); !ok {
					t.Errorf("Expected *ConsoleCommitWriter for format %q", tt.format)
				}
			}
		})
	}
}
