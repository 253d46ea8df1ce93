package git

import "errors"

var (
	// ErrRepositoryPathNotFound is returned when the repository path does not exist.
	ErrRepositoryPathNotFound = errors.New("repository path not found")
	// ErrNotARepository is returned when the path exists but holds no git repository.
	ErrNotARepository = errors.New("not a git repository")
	// ErrRevisionNotFound is returned when the branch or revision cannot be resolved.
	ErrRevisionNotFound = errors.New("revision not found")
)
