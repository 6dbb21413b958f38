package git

// Client defines the interface for the repository operations the resolution
// pipeline needs. This enables test doubles for code that depends on git:
// the merge engine and pipeline are tested against a fake client, never a
// real repository.
type Client interface {
	// ResolveRoot returns the absolute path of the repository root
	// enclosing dir.
	ResolveRoot(dir string) (string, error)

	// ListUnmergedPaths returns the repo-relative paths that currently have
	// unmerged index entries, in index order, deduplicated.
	ListUnmergedPaths(root string) ([]string, error)

	// ReadStageBlob returns the blob content of relPath at the given
	// conflict stage.
	ReadStageBlob(root, relPath string, stage ConflictStage) ([]byte, error)

	// WriteResolvedFile overwrites the working-tree file at absPath with
	// content, preserving the existing file mode.
	WriteResolvedFile(absPath string, content []byte) error

	// MarkResolved collapses the unmerged index entries for relPath into a
	// regular staged entry.
	MarkResolved(root, relPath string) error
}

// DefaultClient is the production implementation that shells out to git
// through a Commander.
type DefaultClient struct {
	commander Commander
}

// NewClient returns the default git client backed by the live commander.
func NewClient() Client {
	return &DefaultClient{commander: DefaultCommander}
}

// NewClientWithCommander returns a client backed by the given commander.
// Tests use this to substitute canned git output.
func NewClientWithCommander(commander Commander) *DefaultClient {
	return &DefaultClient{commander: commander}
}
