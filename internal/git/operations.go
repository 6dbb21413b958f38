package git

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/3dyuval/git-resolve-conflict/internal/logger"
)

// ResolveRoot returns the absolute repository root enclosing dir.
func (c *DefaultClient) ResolveRoot(dir string) (string, error) {
	stdout, _, err := c.commander.Run(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}

// ListUnmergedPaths parses `git ls-files -u -z` output. Each record has the
// form "<mode> <sha> <stage>\t<path>"; a conflicted path appears once per
// present stage, so records are deduplicated while preserving index order.
func (c *DefaultClient) ListUnmergedPaths(root string) ([]string, error) {
	stdout, _, err := c.commander.Run(root, "ls-files", "-u", "-z")
	if err != nil {
		return nil, err
	}

	var paths []string
	seen := make(map[string]bool)

	for _, record := range strings.Split(string(stdout), "\x00") {
		if record == "" {
			continue
		}
		tab := strings.IndexByte(record, '\t')
		if tab < 0 {
			logger.Debug("skipping malformed ls-files record", "record", record)
			continue
		}
		path := record[tab+1:]
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	return paths, nil
}

// ReadStageBlob reads the blob for relPath at the given conflict stage via
// `git show :<stage>:<path>`. A missing stage (add/add or delete/modify
// conflicts) surfaces as a GitError from git itself.
func (c *DefaultClient) ReadStageBlob(root, relPath string, stage ConflictStage) ([]byte, error) {
	spec := fmt.Sprintf(":%d:%s", stage, relPath)
	stdout, _, err := c.commander.Run(root, "show", spec)
	if err != nil {
		return nil, err
	}
	return stdout, nil
}

// WriteResolvedFile overwrites the working-tree file, keeping the mode of
// the file it replaces.
func (c *DefaultClient) WriteResolvedFile(absPath string, content []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(absPath); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(absPath, content, mode)
}

// MarkResolved stages relPath, collapsing its unmerged entries.
func (c *DefaultClient) MarkResolved(root, relPath string) error {
	_, _, err := c.commander.Run(root, "add", "--", relPath)
	return err
}
