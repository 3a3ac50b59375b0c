package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Pair is one file name present in both trees, with the full path of each
// side's copy.
type Pair struct {
	// Name is the base file name the pair was matched on.
	Name string

	// Left is the path of the copy under the left root.
	Left string

	// Right is the path of the copy under the right root.
	Right string
}

// CommonFiles walks both roots and pairs configuration files by base name.
//
// Any walk error (unreadable root, unreadable entry) aborts the discovery.
// When a tree holds several files with the same base name, the one visited
// last wins. Pairs come back sorted by name so runs are deterministic.
func CommonFiles(fsys afero.Fs, cfg Config, leftRoot, rightRoot string) ([]Pair, error) {
	left, err := index(fsys, cfg, leftRoot)
	if err != nil {
		return nil, err
	}

	right, err := index(fsys, cfg, rightRoot)
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	for name, leftPath := range left {
		rightPath, ok := right[name]
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{Name: name, Left: leftPath, Right: rightPath})
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Name < pairs[j].Name
	})

	return pairs, nil
}

// index maps base file name to full path for every matching file under root.
func index(fsys afero.Fs, cfg Config, root string) (map[string]string, error) {
	files := make(map[string]string)

	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !matchExtension(path, cfg.Extension) {
			return nil
		}
		files[filepath.Base(path)] = path
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

func matchExtension(path, want string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return ext != "" && strings.EqualFold(ext, want)
}
