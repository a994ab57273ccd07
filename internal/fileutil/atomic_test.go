package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "report.txt")

	require.NoError(t, WriteFileAtomic(testFile, []byte("hello world"), 0o644))

	data, err := os.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files left behind")
	assert.Equal(t, "report.txt", entries[0].Name())
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	t.Parallel()

	testFile := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, WriteFileAtomic(testFile, []byte("initial"), 0o644))
	require.NoError(t, WriteFileAtomic(testFile, []byte("updated"), 0o644))

	data, err := os.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "updated", string(data))
}

func TestWriteFileAtomicCreatesDirectories(t *testing.T) {
	t.Parallel()

	testFile := filepath.Join(t.TempDir(), "runs", "today", "report.txt")
	require.NoError(t, WriteFileAtomic(testFile, []byte("data"), 0o600))

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteFileAtomicBlockedPath(t *testing.T) {
	t.Parallel()

	// a regular file where a directory is needed
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := WriteFileAtomic(filepath.Join(blocker, "report.txt"), []byte("data"), 0o644)
	assert.Error(t, err)
}

func TestWriteYAMLAtomic(t *testing.T) {
	t.Parallel()

	type doc struct {
		Name  string `yaml:"name"`
		Games int    `yaml:"games"`
	}

	testFile := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteYAMLAtomic(testFile, doc{Name: "greedy", Games: 10}))

	data, err := os.ReadFile(testFile)
	require.NoError(t, err)

	var got doc
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, doc{Name: "greedy", Games: 10}, got)
}
