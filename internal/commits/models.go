package commits

// Request carries the parameters of a single commit query.
type Request struct {
	RepoPath string   // Absolute path to the repository
	Branch   string   // Branch, tag, hash or other revision to walk from
	Since    string   // Optional ISO-8601 lower bound on the authored date
	Until    string   // Optional ISO-8601 upper bound on the authored date
	Skip     int      // Matching commits to omit, newest first
	MaxCount int      // Maximum commits to return; <= 0 uses the configured default
	Paths    []string // Optional glob patterns; only commits touching a match are returned
	Grep     []string // Optional message patterns
}

// Record represents a single Git commit.
type Record struct {
	Hexsha       string `json:"hexsha" jsonschema_description:"The full commit hash."`
	AuthorName   string `json:"author_name" jsonschema_description:"The name of the commit author."`
	AuthorEmail  string `json:"author_email" jsonschema_description:"The email of the commit author."`
	AuthoredDate string `json:"authored_date" jsonschema_description:"The authored date in ISO 8601 format."`
	Message      string `json:"message" jsonschema_description:"The full commit message."`
}

// Result is the ordered list of commits returned by a query, newest first.
type Result struct {
	Commits []Record `json:"commits" jsonschema_description:"A list of Commit objects."`
}

func emptyResult() Result {
	return Result{Commits: []Record{}}
}
