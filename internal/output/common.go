package output

import (
	"io"
	"os"
	"strings"
)

const shortSHALength = 10

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// subject returns the first line of a commit message.
func subject(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		return message[:idx]
	}
	return message
}

func shortSHA(sha string) string {
	if len(sha) <= shortSHALength {
		return sha
	}
	return sha[:shortSHALength]
}

// truncateMessage shortens msg to at most maxLen runes, marking the cut with "...".
func truncateMessage(msg string, maxLen int) string {
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	return string(runes[:maxLen-3]) + "..."
}

// dateRangeLabel describes the since/until bounds of a report, or "" when unbounded.
func dateRangeLabel(since, until string) string {
	switch {
	case since != "" && until != "":
		return since + " to " + until
	case since != "":
		return "since " + since
	case until != "":
		return "until " + until
	default:
		return ""
	}
}
