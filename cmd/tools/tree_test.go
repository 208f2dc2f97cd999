package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "api"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules", "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), []byte("package main"), 0o644))

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runTree(cmd, []string{dir}))

	out := buf.String()
	assert.Contains(t, out, filepath.Base(dir)+"/\n")
	assert.Contains(t, out, "├── README.md")
	assert.Contains(t, out, "└── src/")
	assert.Contains(t, out, "    ├── api/")
	assert.Contains(t, out, "    └── main.go")
	assert.NotContains(t, out, "node_modules")
}

func TestRunTree_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cmd := &cobra.Command{}
	cmd.SetOut(new(bytes.Buffer))

	err := runTree(cmd, []string{file})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}
