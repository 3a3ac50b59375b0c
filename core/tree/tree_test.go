package tree

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte("k=v\n"), 0o644))
}

func TestCommonFiles_PairsByBaseName(t *testing.T) {
	fsys := afero.NewMemMapFs()
	touch(t, fsys, "left/conf/db.cfg")
	touch(t, fsys, "left/app.cfg")
	touch(t, fsys, "right/backup/db.cfg")
	touch(t, fsys, "right/app.cfg")
	touch(t, fsys, "right/only-right.cfg")

	pairs, err := CommonFiles(fsys, Config{Extension: "cfg"}, "left", "right")

	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{Name: "app.cfg", Left: "left/app.cfg", Right: "right/app.cfg"}, pairs[0])
	assert.Equal(t, Pair{Name: "db.cfg", Left: "left/conf/db.cfg", Right: "right/backup/db.cfg"}, pairs[1])
}

func TestCommonFiles_ExtensionFilter(t *testing.T) {
	fsys := afero.NewMemMapFs()
	touch(t, fsys, "left/a.cfg")
	touch(t, fsys, "left/b.CFG")
	touch(t, fsys, "left/c.txt")
	touch(t, fsys, "left/noext")
	touch(t, fsys, "right/a.cfg")
	touch(t, fsys, "right/b.CFG")
	touch(t, fsys, "right/c.txt")
	touch(t, fsys, "right/noext")

	pairs, err := CommonFiles(fsys, Config{Extension: "cfg"}, "left", "right")

	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "a.cfg", pairs[0].Name)
	assert.Equal(t, "b.CFG", pairs[1].Name)
}

func TestCommonFiles_NoOverlap(t *testing.T) {
	fsys := afero.NewMemMapFs()
	touch(t, fsys, "left/a.cfg")
	touch(t, fsys, "right/b.cfg")

	pairs, err := CommonFiles(fsys, Config{Extension: "cfg"}, "left", "right")

	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestCommonFiles_MissingRootFails(t *testing.T) {
	fsys := afero.NewMemMapFs()
	touch(t, fsys, "left/a.cfg")

	_, err := CommonFiles(fsys, Config{Extension: "cfg"}, "left", "right")
	assert.Error(t, err)

	_, err = CommonFiles(fsys, Config{Extension: "cfg"}, "missing", "left")
	assert.Error(t, err)
}

func TestCommonFiles_SortedByName(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, name := range []string{"zeta.cfg", "alpha.cfg", "mid.cfg"} {
		touch(t, fsys, "left/"+name)
		touch(t, fsys, "right/"+name)
	}

	pairs, err := CommonFiles(fsys, Config{Extension: "cfg"}, "left", "right")

	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, "alpha.cfg", pairs[0].Name)
	assert.Equal(t, "mid.cfg", pairs[1].Name)
	assert.Equal(t, "zeta.cfg", pairs[2].Name)
}
