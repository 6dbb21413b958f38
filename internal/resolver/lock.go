package resolver

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// lockFilePath returns where the per-repository guard lives. Inside a
// normal repository that is the .git directory; for worktrees (where .git
// is a file) the lock falls back to the system temp directory keyed by the
// repository root.
func lockFilePath(root string) string {
	gitDir := filepath.Join(root, ".git")
	if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
		return filepath.Join(gitDir, "resolve-conflict.lock")
	}
	sum := sha256.Sum256([]byte(root))
	return filepath.Join(os.TempDir(), fmt.Sprintf("git-resolve-conflict-%x.lock", sum[:8]))
}
