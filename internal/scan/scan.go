// Package scan discovers report files on disk.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	pserrors "proofscan/internal/errors"
)

// FindReports walks root recursively and returns every regular file whose
// name ends in ext or ext+".gz", sorted for deterministic processing order.
// Hidden directories are skipped.
func FindReports(root, ext string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, pserrors.New(pserrors.ReportNotFound,
			fmt.Sprintf("cannot scan %s", root), err)
	}
	if !info.IsDir() {
		return nil, pserrors.New(pserrors.ReportNotFound,
			fmt.Sprintf("%s is not a directory", root), nil)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesExtension(d.Name(), ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

func matchesExtension(name, ext string) bool {
	return strings.HasSuffix(name, ext) || strings.HasSuffix(name, ext+".gz")
}
