package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/masmgr/versioncheck/internal/git"
	"github.com/masmgr/versioncheck/internal/version"
)

func TestExtract(t *testing.T) {
	clearActionsEnv(t)
	repo, branch := createTestRepo(t, map[string]string{"metadata.rb": metadata("1.0.0")})
	writeFile(t, repo, "metadata.rb", metadata("1.1.0"))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "working copy", args: []string{"extract", "--repo", repo}, want: "1.1.0\n"},
		{name: "explicit file", args: []string{"extract", "--repo", repo, "metadata.rb"}, want: "1.1.0\n"},
		{name: "revision", args: []string{"extract", "--repo", repo, "--backend", "go-git", "--revision", branch}, want: "1.0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, expected %q", out, tt.want)
			}
		})
	}
}

func TestExtract_NotFound(t *testing.T) {
	clearActionsEnv(t)
	repo, _ := createTestRepo(t, map[string]string{"metadata.rb": "name 'demo'\n"})

	_, err := runApp(t, "extract", "--repo", repo)
	if !errors.Is(err, version.ErrNotFound) {
		t.Fatalf("expected version.ErrNotFound, got %v", err)
	}
}

func TestShow(t *testing.T) {
	clearActionsEnv(t)
	repo, branch := createTestRepo(t, map[string]string{"metadata.rb": metadata("1.0.0")})
	writeFile(t, repo, "metadata.rb", "changed\n")

	out, err := runApp(t, "show", "--repo", repo, "--backend", "go-git", branch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != metadata("1.0.0") {
		t.Errorf("output = %q, expected committed contents", out)
	}
}

func TestShow_Errors(t *testing.T) {
	clearActionsEnv(t)
	repo, _ := createTestRepo(t, map[string]string{"metadata.rb": metadata("1.0.0")})

	if _, err := runApp(t, "show", "--repo", repo); err == nil || !strings.Contains(err.Error(), "revision is required") {
		t.Errorf("expected missing revision error, got %v", err)
	}

	_, err := runApp(t, "show", "--repo", repo, "--backend", "go-git", "nope")
	var retrievalErr *git.RetrievalError
	if !errors.As(err, &retrievalErr) || retrievalErr.Code != 128 {
		t.Errorf("expected RetrievalError with code 128, got %v", err)
	}
}
