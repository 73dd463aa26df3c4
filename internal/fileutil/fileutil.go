// Package fileutil provides destination-file helpers: atomic writes,
// numbered destination names, and directory locks for batch runs.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// WriteAtomic writes to path by streaming into a temporary sibling file and
// renaming it into place, so a failed write never leaves a partial file at
// path. The temporary file is removed on any failure.
func WriteAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// NumberedDests expands dest into n numbered destination paths: "out.png"
// becomes "out_1.png" through "out_n.png". With n == 1 the path is returned
// unchanged.
func NumberedDests(dest string, n int) []string {
	if n <= 1 {
		return []string{dest}
	}
	ext := filepath.Ext(dest)
	base := strings.TrimSuffix(dest, ext)
	dests := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		dests = append(dests, fmt.Sprintf("%s_%d%s", base, i, ext))
	}
	return dests
}

// NextAvailable appends a numeric suffix until dest names a path that does
// not exist yet.
func NextAvailable(dest string) string {
	if _, err := os.Stat(dest); os.IsNotExist(err) {
		return dest
	}

	ext := filepath.Ext(dest)
	base := strings.TrimSuffix(dest, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// LockDir takes a non-blocking advisory lock on dir so concurrent runs over
// the same pool cannot hand out the same images twice. The returned release
// function unlocks and removes the lock file.
func LockDir(dir string) (func(), error) {
	lockPath := filepath.Join(dir, ".imgpick.lock")
	lock := flock.New(lockPath)

	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("another imgpick run holds %s", lockPath)
	}

	return func() {
		lock.Unlock()
		os.Remove(lockPath)
	}, nil
}
