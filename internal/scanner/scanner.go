// Package scanner captures the candidate file pool under a source directory.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Result holds the output of scanning a directory.
type Result struct {
	// Paths lists every regular file under the root, in enumeration order.
	Paths []string
	// Dirs counts the directories visited, the root included.
	Dirs int
}

// Scan walks dir recursively and returns all regular file paths in
// enumeration order. The order is the deterministic lexical order of
// filepath.WalkDir. An empty directory yields an empty pool, not an error.
func Scan(dir string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	result := &Result{}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			result.Dirs++
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		result.Paths = append(result.Paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	return result, nil
}
