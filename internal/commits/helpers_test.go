package commits

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/masmgr/gitcommits-mcp/config"
)

// createTestRepo initializes a repository and writes one commit per message,
// the i-th commit authored at times[i].
func createTestRepo(t *testing.T, msgs []string, times []time.Time) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	for i, msg := range msgs {
		name := filepath.Join(dir, "file.txt")
		if err := os.WriteFile(name, []byte(msg+times[i].String()), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := wt.Add("file.txt"); err != nil {
			t.Fatalf("Add: %v", err)
		}
		sig := &object.Signature{Name: "Test Author", Email: "test@example.com", When: times[i]}
		if _, err := wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
			t.Fatalf("Commit: %v", err)
		}
	}
	return dir
}

func newTestService(diag *bytes.Buffer, opts ...Option) *Service {
	cfg := config.DefaultConfig()
	opts = append([]Option{WithLocation(time.UTC)}, opts...)
	return NewService(cfg.Query, cfg.Filters, diag, opts...)
}
