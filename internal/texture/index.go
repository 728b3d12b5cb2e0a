package texture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths.
// Formats with alpha (PNG, TGA) take priority over JPEG for the same stem.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir and its subdirectories for texture files.
// An empty dir yields an empty index. Unreadable directories, including a
// missing dir, are skipped and reported in the returned error; the index
// still holds everything that could be read.
func BuildIndex(dir string) (*Index, error) {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx, nil
	}

	var errs []error
	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, fmt.Errorf("texture: scan %s: %w", path, err))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(Extensions, ext) {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists || (hasAlpha(ext) && !hasAlpha(strings.ToLower(filepath.Ext(existing)))) {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx, errors.Join(errs...)
}

func hasAlpha(ext string) bool {
	return ext == ".png" || ext == ".tga"
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Only the base name matters: "models\\wood.jpg" and "wood.png" both find
// the indexed "wood" texture.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	if idx == nil {
		return "", false
	}
	texName = strings.ReplaceAll(texName, "\\", "/")
	base := filepath.Base(texName)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}

// Paths returns every indexed file path, sorted.
func (idx *Index) Paths() []string {
	if idx == nil {
		return nil
	}
	paths := make([]string, 0, len(idx.entries))
	for _, p := range idx.entries {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}
