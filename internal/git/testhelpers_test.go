package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// testRepo wraps a temporary go-git repository with a worktree.
type testRepo struct {
	dir  string
	repo *gogit.Repository
	wt   *gogit.Worktree
}

// newTestRepo creates a temporary git repository.
func newTestRepo(t *testing.T) *testRepo {
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
	return &testRepo{dir: dir, repo: repo, wt: wt}
}

// write creates or overwrites a file in the worktree and stages it.
func (r *testRepo) write(t *testing.T, rel, content string) {
	t.Helper()
	full := filepath.Join(r.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := r.wt.Add(rel); err != nil {
		t.Fatalf("Add: %v", err)
	}
}

// commit records the staged changes.
func (r *testRepo) commit(t *testing.T, msg string) {
	t.Helper()
	sig := &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()}
	if _, err := r.wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("Commit: %v", err)
	}
}

// headBranch returns the short name of the branch HEAD points to.
func (r *testRepo) headBranch(t *testing.T) string {
	t.Helper()
	head, err := r.repo.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	return head.Name().Short()
}
