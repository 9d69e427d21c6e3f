package theme

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

// LoadRevision decodes the theme at path as it was committed at rev in the
// git repository containing path. Rev accepts anything git rev-parse does
// for commits, such as HEAD, HEAD~2, a branch or a hash. The document is not
// validated.
func LoadRevision(path, rev string) (*Document, error) {
	label := fmt.Sprintf("%s@%s", path, rev)

	format, err := FormatForPath(path)
	if err != nil {
		return nil, loomerrors.NewParseError(label, 0, err)
	}

	abs, err := canonicalPath(path)
	if err != nil {
		return nil, loomerrors.NewParseError(label, 0, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, loomerrors.NewParseError(label, 0, fmt.Errorf("open repository: %w", err))
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, loomerrors.NewParseError(label, 0, err)
	}
	root, err := canonicalPath(worktree.Filesystem.Root())
	if err != nil {
		return nil, loomerrors.NewParseError(label, 0, err)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return nil, loomerrors.NewParseError(label, 0, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, loomerrors.NewParseError(label, 0, fmt.Errorf("resolve %s: %w", rev, err))
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, loomerrors.NewParseError(label, 0, err)
	}
	file, err := commit.File(filepath.ToSlash(rel))
	if err != nil {
		return nil, loomerrors.NewParseError(label, 0, fmt.Errorf("%s at %s: %w", rel, rev, err))
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, loomerrors.NewParseError(label, 0, err)
	}

	return decode(label, []byte(contents), format)
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	// The file may be deleted from the working tree; resolve its directory.
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(abs)), nil
}
