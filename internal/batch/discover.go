package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover returns the scene files named by path: the file itself, or every
// .json file under a directory (sorted, manifests excluded).
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("batch: scenes %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var paths []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == ManifestName {
			return nil
		}
		if strings.EqualFold(filepath.Ext(p), ".json") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch: scan %s: %w", path, err)
	}

	slices.Sort(paths)
	return paths, nil
}
