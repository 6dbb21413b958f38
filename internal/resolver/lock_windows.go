//go:build windows

package resolver

import (
	"os"

	"github.com/3dyuval/git-resolve-conflict/internal/errors"
)

// repoLock approximates the unix flock guard with exclusive lock-file
// creation. Stale locks from crashed processes must be removed by hand.
type repoLock struct {
	path string
}

func acquireRepoLock(root string) (*repoLock, error) {
	path := lockFilePath(root)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, errors.ErrLockHeld(root)
		}
		return nil, errors.ErrFileSystem("create lock file", err)
	}
	f.Close()

	return &repoLock{path: path}, nil
}

func (l *repoLock) release() {
	if l.path == "" {
		return
	}
	_ = os.Remove(l.path)
	l.path = ""
}
