package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Env is the isolated environment created by Isolate
type Env struct {
	// Root is the temporary directory holding everything else
	Root string
	// ConfigHome is $XDG_CONFIG_HOME
	ConfigHome string
	// StateHome is $XDG_STATE_HOME
	StateHome string
}

// UserStyles returns $XDG_CONFIG_HOME/hitfmt/styles
func (e *Env) UserStyles() string {
	return filepath.Join(e.ConfigHome, "hitfmt", "styles")
}

// Isolate sets the XDG base directories to fresh temporary ones for the
// duration of the test. It cannot be used with t.Parallel.
func Isolate(t *testing.T) *Env {
	t.Helper()

	root := t.TempDir()
	env := &Env{
		Root:       root,
		ConfigHome: CreateDir(t, root, "config"),
		StateHome:  CreateDir(t, root, "state"),
	}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	return env
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// StyleDir creates a directory holding one file per entry of sheets, keyed
// by file name, and returns its path.
func StyleDir(t *testing.T, sheets map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range sheets {
		CreateFile(t, dir, name, content)
	}
	return dir
}

// FileExists checks if a file exists and is not a directory.
func FileExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
