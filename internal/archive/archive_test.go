package archive_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loclens/loclens/internal/archive"
)

func TestIsArchive(t *testing.T) {
	require.True(t, archive.IsArchive("foo.zip"))
	require.True(t, archive.IsArchive("foo.tar.gz"))
	require.True(t, archive.IsArchive("foo.tgz"))
	require.False(t, archive.IsArchive("foo.go"))
}

func TestExtractZip(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "sample.zip")

	f, err := os.Create(zipPath)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("main.go")
	require.NoError(t, err)
	_, err = w.Write([]byte("package main\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	root, cleanup, err := archive.Extract(zipPath)
	require.NoError(t, err)
	defer cleanup()

	content, err := os.ReadFile(filepath.Join(root, "main.go"))
	require.NoError(t, err)
	require.Equal(t, "package main\n", string(content))
}
