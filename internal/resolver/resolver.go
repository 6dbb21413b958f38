// Package resolver implements single-file conflict resolution: locating the
// conflicted file, extracting its three index stages, merging them under a
// fixed strategy and staging the result.
package resolver

import (
	"path/filepath"

	"github.com/3dyuval/git-resolve-conflict/internal/errors"
	"github.com/3dyuval/git-resolve-conflict/internal/git"
	"github.com/3dyuval/git-resolve-conflict/internal/logger"
	"github.com/3dyuval/git-resolve-conflict/internal/merge"
)

// ConflictedPath identifies the target file once per invocation.
type ConflictedPath struct {
	AbsolutePath   string
	RepositoryRoot string
	RelativePath   string // POSIX-style, relative to RepositoryRoot
}

// Outcome describes a successful resolution.
type Outcome struct {
	Path            ConflictedPath
	Strategy        merge.Strategy
	ConflictRegions int
}

// Notifier receives a refresh signal after the working-tree file changed on
// disk. Editor integrations supply one so live buffers do not silently
// diverge from the resolved file; the CLI runs without one.
type Notifier interface {
	FileChanged(absPath string)
}

// Resolver runs the resolution pipeline against a repository client.
type Resolver struct {
	client   git.Client
	notifier Notifier
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithNotifier installs a refresh notifier.
func WithNotifier(n Notifier) Option {
	return func(r *Resolver) { r.notifier = n }
}

// New creates a Resolver backed by the given repository client.
func New(client git.Client, opts ...Option) *Resolver {
	r := &Resolver{client: client}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Locate resolves path to its enclosing repository. Symbolic links are
// resolved first: extraction and commit operate on real disk paths, never
// on virtual identifiers.
func (r *Resolver) Locate(path string) (ConflictedPath, error) {
	if path == "" {
		return ConflictedPath{}, errors.ErrNoFile()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return ConflictedPath{}, errors.ErrFileSystem("resolve path", err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	root, err := r.client.ResolveRoot(filepath.Dir(abs))
	if err != nil {
		return ConflictedPath{}, errors.ErrRepoNotFound(abs).WithContext("cause", err.Error())
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return ConflictedPath{}, errors.ErrRepoNotFound(abs).WithContext("cause", err.Error())
	}

	return ConflictedPath{
		AbsolutePath:   abs,
		RepositoryRoot: root,
		RelativePath:   filepath.ToSlash(rel),
	}, nil
}

// IsConflicted reports whether the located file has unmerged index entries.
// Membership is an exact match of the relative path, never a prefix or
// substring match.
func (r *Resolver) IsConflicted(cp ConflictedPath) (bool, error) {
	paths, err := r.client.ListUnmergedPaths(cp.RepositoryRoot)
	if err != nil {
		return false, errors.ErrGitOperation("ls-files", err)
	}
	for _, p := range paths {
		if p == cp.RelativePath {
			return true, nil
		}
	}
	return false, nil
}

// ListConflicts returns the repository root enclosing dir and its currently
// unmerged paths.
func (r *Resolver) ListConflicts(dir string) (string, []string, error) {
	root, err := r.client.ResolveRoot(dir)
	if err != nil {
		return "", nil, errors.ErrRepoNotFound(dir).WithContext("cause", err.Error())
	}
	paths, err := r.client.ListUnmergedPaths(root)
	if err != nil {
		return "", nil, errors.ErrGitOperation("ls-files", err)
	}
	return root, paths, nil
}

// DefaultFile infers the target when the caller gives none: the sole
// conflicted file in the repository enclosing dir.
func (r *Resolver) DefaultFile(dir string) (string, error) {
	root, paths, err := r.ListConflicts(dir)
	if err != nil {
		return "", err
	}
	if len(paths) != 1 {
		return "", errors.ErrNoFile().WithContext("conflicted_count", len(paths))
	}
	return filepath.Join(root, filepath.FromSlash(paths[0])), nil
}

// ResolveFile runs the full pipeline for path under the given strategy.
// A clean (non-conflicted) file is a benign NOT_CONFLICTED error, not a
// failure; callers report it as information. Every temporary artifact is
// removed before return on all paths.
func (r *Resolver) ResolveFile(path string, strategy merge.Strategy) (*Outcome, error) {
	log := logger.WithComponent("resolver")

	cp, err := r.Locate(path)
	if err != nil {
		return nil, err
	}

	conflicted, err := r.IsConflicted(cp)
	if err != nil {
		return nil, err
	}
	if !conflicted {
		return nil, errors.ErrNotConflicted(cp.RelativePath)
	}

	// One resolution in flight per repository: extraction and commit from
	// two simultaneous invocations must not interleave.
	lock, err := acquireRepoLock(cp.RepositoryRoot)
	if err != nil {
		return nil, err
	}
	defer lock.release()

	blobs, err := extractStages(r.client, cp)
	if err != nil {
		return nil, errors.ErrStageExtraction(cp.RelativePath, err)
	}
	defer blobs.cleanup()

	log.Debug("extracted conflict stages",
		"path", cp.RelativePath,
		"base_bytes", len(blobs.base.content),
		"ours_bytes", len(blobs.ours.content),
		"theirs_bytes", len(blobs.theirs.content))

	result, err := merge.Merge(blobs.base.content, blobs.ours.content, blobs.theirs.content, strategy)
	if err != nil {
		return nil, errors.ErrMergeFailed(cp.RelativePath, err)
	}

	if err := r.client.WriteResolvedFile(cp.AbsolutePath, result.Merged); err != nil {
		return nil, errors.ErrCommitFailed(cp.RelativePath, err)
	}
	if err := r.client.MarkResolved(cp.RepositoryRoot, cp.RelativePath); err != nil {
		return nil, errors.ErrCommitFailed(cp.RelativePath, err)
	}

	if r.notifier != nil {
		r.notifier.FileChanged(cp.AbsolutePath)
	}

	log.Debug("resolved file",
		"path", cp.RelativePath,
		"strategy", strategy.String(),
		"conflict_regions", result.ConflictRegions)

	return &Outcome{
		Path:            cp,
		Strategy:        strategy,
		ConflictRegions: result.ConflictRegions,
	}, nil
}
