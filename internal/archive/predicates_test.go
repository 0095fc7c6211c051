package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirListerIgnoresFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tms"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "rtest"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644))

	names := ListDir(dir, DirLister{})
	assert.ElementsMatch(t, []string{"tms", "rtest"}, names)
}

func TestDirListerIgnoresSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "linked")))

	names := ListDir(dir, DirLister{})
	assert.ElementsMatch(t, []string{"real"}, names)
}

func TestDirListerMissingDirectory(t *testing.T) {
	names := ListDir(filepath.Join(t.TempDir(), "missing"), DirLister{})
	assert.Empty(t, names)
}

func TestDateListerMergesLooseAndBundle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "20200101"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "20200103"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "20200102.traffic"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invalid.traffic"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "notadate"), 0o755))

	names := ListDir(dir, DateLister{})
	assert.ElementsMatch(t, []string{"20200101", "20200103", "20200102"}, names)
}

func TestSidListerAndExtLister(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "100.v30"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "100.o20"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "200.v30"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "100.bogus"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "100.v30dir"), 0o755))

	sids := ListDir(dir, SidLister{})
	assert.ElementsMatch(t, []string{"100", "100", "200"}, sids)

	exts := ListDir(dir, ExtLister{Sid: "100"})
	assert.ElementsMatch(t, []string{"v30", "o20"}, exts)
}

func TestListZip(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "20200101.traffic")
	f, err := os.Create(zipPath)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for _, name := range []string{"100.v30", "200.o20", "100.bogus"} {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte("x"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	sids := ListZip(zipPath, SidLister{})
	assert.ElementsMatch(t, []string{"100", "200"}, sids)
}

func TestListZipMissingBundle(t *testing.T) {
	names := ListZip(filepath.Join(t.TempDir(), "missing.traffic"), SidLister{})
	assert.Empty(t, names)
}
