package walk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loclens/loclens/internal/walk"
)

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalkFilesystemExcludesNodeModulesByDefault(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "a.go"), "package a\n")
	mustWriteFile(t, filepath.Join(root, "node_modules", "foo.js"), "x\n")

	paths, err := walk.Walk(walk.Config{Roots: []string{root}, VCS: walk.VCSNone})
	require.NoError(t, err)

	assert.Contains(t, joinBase(paths), "a.go")
	assert.NotContains(t, joinBase(paths), "foo.js")
}

func TestWalkFilesystemIncludesNodeModulesWhenNoDefaultExcludes(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, "node_modules", "foo.js"), "x\n")

	paths, err := walk.Walk(walk.Config{
		Roots:             []string{root},
		VCS:               walk.VCSNone,
		NoDefaultExcludes: true,
	})
	require.NoError(t, err)
	assert.Contains(t, joinBase(paths), "foo.js")
}

func TestWalkFilesystemSkipsHiddenByDefault(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, ".hidden.go"), "package a\n")

	paths, err := walk.Walk(walk.Config{Roots: []string{root}, VCS: walk.VCSNone})
	require.NoError(t, err)
	assert.NotContains(t, joinBase(paths), ".hidden.go")
}

func TestWalkListFile(t *testing.T) {
	dir := t.TempDir()
	listPath := filepath.Join(dir, "files.txt")
	target := filepath.Join(dir, "a.go")
	mustWriteFile(t, target, "package a\n")
	mustWriteFile(t, listPath, target+"\n\n")

	paths, err := walk.Walk(walk.Config{ListFile: listPath})
	require.NoError(t, err)
	require.Equal(t, []string{target}, paths)
}

func TestWalkRespectsGitignore(t *testing.T) {
	root := t.TempDir()
	mustWriteFile(t, filepath.Join(root, ".gitignore"), "*.log\n")
	mustWriteFile(t, filepath.Join(root, "keep.go"), "package a\n")
	mustWriteFile(t, filepath.Join(root, "drop.log"), "noise\n")

	paths, err := walk.Walk(walk.Config{Roots: []string{root}, VCS: walk.VCSNone, RespectGitignore: true})
	require.NoError(t, err)
	assert.Contains(t, joinBase(paths), "keep.go")
	assert.NotContains(t, joinBase(paths), "drop.log")
}

func joinBase(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}
