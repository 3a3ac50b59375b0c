package differ

import (
	"fmt"

	"confdiff/core/ini"

	"github.com/spf13/afero"
)

// Files compares two configuration files and returns their value drift.
//
// Either side failing to open is fatal and aborts the comparison; once a
// side is open, its content parses best-effort (see ini.Read). Both handles
// are closed before the diff is computed.
func Files(fsys afero.Fs, leftPath, rightPath string) ([]Difference, error) {
	left, err := readFile(fsys, leftPath)
	if err != nil {
		return nil, err
	}

	right, err := readFile(fsys, rightPath)
	if err != nil {
		return nil, err
	}

	return Diff(left, right), nil
}

func readFile(fsys afero.Fs, path string) (ini.Map, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ini.Read(f), nil
}
