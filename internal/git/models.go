package git

import (
	"time"
)

// CommitInfo holds the commit metadata returned by a history query.
type CommitInfo struct {
	SHA     string
	When    time.Time // author time
	Author  AuthorInfo
	Message string // raw message, untrimmed
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath string
	Branch   string
	Since    *time.Time
	Until    *time.Time
	Skip     int      // Matching commits to drop before results start
	MaxCount int      // Upper bound on returned commits; <= 0 means unbounded
	Include  []string // Glob patterns to include
	Exclude  []string // Glob patterns to exclude
	Grep     []string // Message patterns; a commit matches if any pattern does
}

// hasPathFilters reports whether the reader needs to inspect touched paths.
func (o ReadOptions) hasPathFilters() bool {
	return len(o.Include) > 0 || len(o.Exclude) > 0
}
