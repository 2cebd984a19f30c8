package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "main.py")
	require.NoError(t, SaveFile(path, "print('hi')\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", string(data))
}

func TestMaterializeMovesFileAndWritesManifest(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "binary_tree.py")
	require.NoError(t, SaveFile(src, "class BinaryTree:\n    pass\n"))

	dir, err := Materialize(root, "binary_tree_project", src, "numpy\nrequests", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "binary_tree_project"), dir)

	moved, err := os.ReadFile(filepath.Join(dir, "binary_tree.py"))
	require.NoError(t, err)
	assert.Contains(t, string(moved), "class BinaryTree")

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source file should have been moved")

	reqs, err := os.ReadFile(filepath.Join(dir, "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, "numpy\nrequests\n", string(reqs))
}

func TestMaterializeSkipsEmptyManifest(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "hello.py")
	require.NoError(t, SaveFile(src, "print('hi')\n"))

	dir, err := Materialize(root, "hello_project", src, "", nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "requirements.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestMaterializeNoFile(t *testing.T) {
	root := t.TempDir()
	dir, err := Materialize(root, "empty_project", "", "flask", nil)
	require.NoError(t, err)

	reqs, err := os.ReadFile(filepath.Join(dir, "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, "flask\n", string(reqs))
}
