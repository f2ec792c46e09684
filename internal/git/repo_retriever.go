package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
)

// exitFatal is the status git uses for unknown revisions and paths.
const exitFatal = 128

// RepoRetriever reads historical file contents through go-git, without a git binary.
type RepoRetriever struct {
	repoPath string
}

// NewRepoRetriever creates a retriever for the repository containing repoPath.
func NewRepoRetriever(repoPath string) *RepoRetriever {
	return &RepoRetriever{repoPath: repoPath}
}

// FileContents returns the blob contents of path in the commit revision resolves to.
// Lookup failures are reported like a failed `git show`.
func (r *RepoRetriever) FileContents(ctx context.Context, path, revision string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", processThrew(err)
	}

	repo, err := gogit.PlainOpenWithOptions(r.repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", processThrew(fmt.Errorf("open repository %s: %w", r.repoPath, err))
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", processFailed(fmt.Sprintf("invalid object name '%s': %v", revision, err), exitFatal)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", processFailed(fmt.Sprintf("read commit %s: %v", hash, err), exitFatal)
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", processFailed(fmt.Sprintf("read tree of %s: %v", hash, err), exitFatal)
	}

	entry, err := tree.FindEntry(path)
	if err != nil {
		return "", processFailed(fmt.Sprintf("path '%s' does not exist in '%s'", path, revision), exitFatal)
	}
	switch {
	case entry.Mode == filemode.Dir:
		return "", processFailed(fmt.Sprintf("path '%s' in '%s' is a directory", path, revision), exitFatal)
	case entry.Mode == filemode.Submodule:
		return "", processFailed(fmt.Sprintf("path '%s' in '%s' is a submodule", path, revision), exitFatal)
	case !entry.Mode.IsFile():
		return "", processFailed(fmt.Sprintf("path '%s' in '%s' is not a file (mode %s)", path, revision, entry.Mode), exitFatal)
	}

	file, err := tree.TreeEntryFile(entry)
	if err != nil {
		return "", processFailed(fmt.Sprintf("read blob %s: %v", entry.Hash, err), exitFatal)
	}

	contents, err := file.Contents()
	if err != nil {
		return "", processFailed(fmt.Sprintf("read blob %s: %v", entry.Hash, err), exitFatal)
	}
	return contents, nil
}
