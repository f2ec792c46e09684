package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// clearActionsEnv keeps the runner's own GitHub Actions variables out of the tests.
func clearActionsEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GITHUB_EVENT_NAME", "GITHUB_EVENT_PATH", "GITHUB_WORKSPACE",
		"GITHUB_OUTPUT", "GITHUB_STEP_SUMMARY", "RUNNER_DEBUG",
	} {
		t.Setenv(k, "")
	}
}

// createTestRepo commits files into a fresh repository and returns its path and default branch.
func createTestRepo(t *testing.T, files map[string]string) (string, string) {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	for rel, content := range files {
		writeFile(t, dir, rel, content)
		if _, err := w.Add(rel); err != nil {
			t.Fatalf("Failed to add file: %v", err)
		}
	}

	sig := &object.Signature{Name: "Test Author", Email: "test@example.com", When: time.Now()}
	if _, err := w.Commit("initial", &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Failed to read HEAD: %v", err)
	}
	return dir, head.Name().Short()
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

func writeEventFile(t *testing.T, branch string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	doc := fmt.Sprintf(`{"action":"synchronize","pull_request":{"base":{"repo":{"default_branch":%q}}}}`, branch)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func metadata(v string) string {
	return "name 'demo'\nmaintainer 'Ops'\nversion '" + v + "'\n"
}

// runApp runs the CLI with args and returns what it wrote to its writer.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := App()
	app.Writer = &buf
	app.ErrWriter = &buf
	err := app.Run(append([]string{"versioncheck"}, args...))
	return buf.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}
