//go:build !windows

package resolver

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/3dyuval/git-resolve-conflict/internal/errors"
)

// repoLock is an advisory flock held across extraction and commit so two
// simultaneous resolutions against one repository cannot interleave.
type repoLock struct {
	file *os.File
}

// acquireRepoLock takes the per-repository guard without blocking. A held
// lock means another resolution is in flight; the caller fails fast
// instead of waiting.
func acquireRepoLock(root string) (*repoLock, error) {
	path := lockFilePath(root)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, errors.ErrFileSystem("open lock file", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if err == unix.EWOULDBLOCK {
			return nil, errors.ErrLockHeld(root)
		}
		return nil, errors.ErrFileSystem("acquire lock", err)
	}

	return &repoLock{file: f}, nil
}

func (l *repoLock) release() {
	if l.file == nil {
		return
	}
	_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	l.file.Close()
	l.file = nil
}
