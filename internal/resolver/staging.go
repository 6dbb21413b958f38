package resolver

import (
	"fmt"
	"os"

	"github.com/3dyuval/git-resolve-conflict/internal/git"
	"github.com/3dyuval/git-resolve-conflict/internal/logger"
)

// stagedBlob is one side of the three-way merge, materialized into an
// isolated temporary file owned exclusively by this invocation.
type stagedBlob struct {
	stage   git.ConflictStage
	content []byte
	path    string // temporary file location
}

// stagedBlobs bundles the three stages so cleanup covers them as a unit.
type stagedBlobs struct {
	base, ours, theirs stagedBlob
}

// extractStages reads the three stage blobs for cp and writes each to its
// own freshly allocated temporary file. Extraction is all-or-nothing: if
// any stage is unreadable (add/add or delete/modify conflicts leave stages
// absent) the partial temp files are removed and the error returned.
func extractStages(client git.Client, cp ConflictedPath) (*stagedBlobs, error) {
	blobs := &stagedBlobs{}

	for _, target := range []struct {
		stage git.ConflictStage
		blob  *stagedBlob
	}{
		{git.StageBase, &blobs.base},
		{git.StageOurs, &blobs.ours},
		{git.StageTheirs, &blobs.theirs},
	} {
		content, err := client.ReadStageBlob(cp.RepositoryRoot, cp.RelativePath, target.stage)
		if err != nil {
			blobs.cleanup()
			return nil, fmt.Errorf("stage %s: %w", target.stage, err)
		}

		path, err := writeTempBlob(target.stage, content)
		if err != nil {
			blobs.cleanup()
			return nil, err
		}

		*target.blob = stagedBlob{stage: target.stage, content: content, path: path}
	}

	return blobs, nil
}

// writeTempBlob writes content to a fresh temp file named after the stage.
func writeTempBlob(stage git.ConflictStage, content []byte) (string, error) {
	f, err := os.CreateTemp("", fmt.Sprintf("grc-stage-%s-*", stage))
	if err != nil {
		return "", fmt.Errorf("create temp file for stage %s: %w", stage, err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write temp file for stage %s: %w", stage, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close temp file for stage %s: %w", stage, err)
	}

	return f.Name(), nil
}

// cleanup removes every temp file this extraction created. Safe to call on
// partially extracted sets and more than once.
func (b *stagedBlobs) cleanup() {
	for _, blob := range []*stagedBlob{&b.base, &b.ours, &b.theirs} {
		if blob.path == "" {
			continue
		}
		if err := os.Remove(blob.path); err != nil && !os.IsNotExist(err) {
			logger.Warn("failed to remove temp file", "path", blob.path, "error", err)
		}
		blob.path = ""
	}
}
