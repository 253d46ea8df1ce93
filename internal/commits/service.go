// Package commits implements the commit history query behind the get_commits tool.
package commits

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/masmgr/gitcommits-mcp/config"
	"github.com/masmgr/gitcommits-mcp/internal/git"
)

// ReaderFactory opens a history reader for the given options.
type ReaderFactory func(opts git.ReadOptions) (git.RepositoryReader, error)

// Option customizes a Service.
type Option func(*Service)

// WithReaderFactory replaces the go-git backed reader.
func WithReaderFactory(f ReaderFactory) Option {
	return func(s *Service) { s.newReader = f }
}

// WithLocation sets the location used for since/until values without an offset.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.location = loc }
}

// Service answers commit history queries.
type Service struct {
	query     config.QueryConfig
	filters   config.FilterConfig
	diag      *Diagnostics
	newReader ReaderFactory
	location  *time.Location
}

// NewService creates a Service. Diagnostics are written to diag (stderr if nil).
func NewService(query config.QueryConfig, filters config.FilterConfig, diag io.Writer, opts ...Option) *Service {
	s := &Service{
		query:     query,
		filters:   filters,
		diag:      NewDiagnostics(diag),
		newReader: openHistoryReader,
		location:  time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func openHistoryReader(opts git.ReadOptions) (git.RepositoryReader, error) {
	return git.NewHistoryReader(opts)
}

// Query returns the commits selected by req, newest first.
//
// Query never fails: an invalid path, an unknown branch or any other error is
// written to the diagnostics stream and an empty result is returned, so an
// empty result may mean either "no commits matched" or "something went wrong".
func (s *Service) Query(ctx context.Context, req Request) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			s.diag.Errorf("An unexpected error occurred: %v", r)
			result = emptyResult()
		}
	}()

	commits, err := s.read(ctx, req)
	if err != nil {
		s.report(req, err)
		return emptyResult()
	}

	result = Result{Commits: make([]Record, 0, len(commits))}
	for _, c := range commits {
		result.Commits = append(result.Commits, toRecord(c))
	}
	return result
}

func (s *Service) read(ctx context.Context, req Request) ([]git.CommitInfo, error) {
	if strings.TrimSpace(req.RepoPath) == "" {
		return nil, fmt.Errorf("%w: empty path", git.ErrRepositoryPathNotFound)
	}
	if strings.TrimSpace(req.Branch) == "" {
		return nil, fmt.Errorf("%w: empty branch name", git.ErrRevisionNotFound)
	}

	opts, err := s.readOptions(req)
	if err != nil {
		return nil, err
	}

	reader, err := s.newReader(opts)
	if err != nil {
		return nil, err
	}
	return reader.ReadCommits(ctx)
}

// readOptions translates a request into reader options.
func (s *Service) readOptions(req Request) (git.ReadOptions, error) {
	since, err := ParseBound(req.Since, false, s.location)
	if err != nil {
		return git.ReadOptions{}, fmt.Errorf("since: %w", err)
	}
	until, err := ParseBound(req.Until, true, s.location)
	if err != nil {
		return git.ReadOptions{}, fmt.Errorf("until: %w", err)
	}

	skip := req.Skip
	if skip < 0 {
		skip = 0
	}

	include := s.filters.Include
	if len(req.Paths) > 0 {
		include = req.Paths
	}

	return git.ReadOptions{
		RepoPath: req.RepoPath,
		Branch:   req.Branch,
		Since:    since,
		Until:    until,
		Skip:     skip,
		MaxCount: s.query.EffectiveMaxCount(req.MaxCount),
		Include:  include,
		Exclude:  s.filters.Exclude,
		Grep:     req.Grep,
	}, nil
}

// report writes the diagnostic for a failed query.
func (s *Service) report(req Request, err error) {
	switch {
	case errors.Is(err, git.ErrRepositoryPathNotFound):
		s.diag.Errorf("Error: Repository path not found at '%s'", req.RepoPath)
	case errors.Is(err, git.ErrNotARepository):
		s.diag.Errorf("Error: '%s' is not a git repository", req.RepoPath)
	case errors.Is(err, git.ErrRevisionNotFound):
		s.diag.Errorf("Error: Git command failed. Is branch '%s' correct? Details: %v", req.Branch, err)
	default:
		s.diag.Errorf("An unexpected error occurred: %v", err)
	}
}

// toRecord projects a commit onto the result schema.
func toRecord(c git.CommitInfo) Record {
	return Record{
		Hexsha:       c.SHA,
		AuthorName:   c.Author.Name,
		AuthorEmail:  c.Author.Email,
		AuthoredDate: c.When.Format(authoredDateLayout),
		Message:      strings.TrimSpace(c.Message),
	}
}
