package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/masmgr/gitcommits-mcp/internal/message"
)

// HistoryReader reads commit history from a Git repository.
type HistoryReader struct {
	repo    *git.Repository
	opts    ReadOptions
	matcher *message.Matcher
}

// NewHistoryReader opens the repository at opts.RepoPath and validates the filters.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	if _, err := os.Stat(opts.RepoPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRepositoryPathNotFound, opts.RepoPath)
		}
		return nil, err
	}

	// Linked worktrees keep refs and objects in the main repository's common dir.
	repo, err := git.PlainOpenWithOptions(opts.RepoPath, &git.PlainOpenOptions{EnableDotGitCommonDir: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, opts.RepoPath)
		}
		return nil, fmt.Errorf("open repository %s: %w", opts.RepoPath, err)
	}

	for _, pattern := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid path pattern %q", pattern)
		}
	}

	matcher, err := message.NewMatcher(opts.Grep)
	if err != nil {
		return nil, fmt.Errorf("invalid message pattern: %w", err)
	}

	return &HistoryReader{repo: repo, opts: opts, matcher: matcher}, nil
}

// ReadCommits walks the history of the configured revision newest-first and
// returns the commits inside the date window, after Skip and up to MaxCount.
func (r *HistoryReader) ReadCommits(ctx context.Context) ([]CommitInfo, error) {
	rev := strings.TrimSpace(r.opts.Branch)
	if rev == "" {
		rev = "HEAD"
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRevisionNotFound, rev, err)
	}

	logOpts := &git.LogOptions{
		From:  *hash,
		Order: git.LogOrderCommitterTime,
	}
	if r.opts.hasPathFilters() {
		logOpts.PathFilter = r.matchesFilters
	}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, fmt.Errorf("log %s: %w", rev, err)
	}
	defer cIter.Close()

	window := newCommitWindow(r.opts)
	results := make([]CommitInfo, 0, initialCapacity(r.opts.MaxCount))

	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !window.inRange(c.Author.When) || !r.matcher.Matches(c.Message) {
			return nil
		}
		if !window.admit() {
			return nil
		}

		results = append(results, toCommitInfo(c))

		if window.full() {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// toCommitInfo copies the fields of a go-git commit.
func toCommitInfo(c *object.Commit) CommitInfo {
	return CommitInfo{
		SHA:     c.Hash.String(),
		When:    c.Author.When,
		Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
		Message: c.Message,
	}
}

// matchesFilters checks if a path matches the include/exclude filters.
// Patterns are validated in NewHistoryReader.
func (r *HistoryReader) matchesFilters(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range r.opts.Exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(r.opts.Include) == 0 {
		return true
	}

	for _, pattern := range r.opts.Include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}

	return false
}

func initialCapacity(maxCount int) int {
	if maxCount <= 0 || maxCount > 256 {
		return 64
	}
	return maxCount
}
