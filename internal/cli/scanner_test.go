package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    SourceRoot
	}{
		{"./...", SourceRoot{Dir: ".", Recursive: true}},
		{"...", SourceRoot{Dir: ".", Recursive: true}},
		{"/...", SourceRoot{Dir: ".", Recursive: true}},
		{"./app/src/...", SourceRoot{Dir: "./app/src", Recursive: true}},
		{"./app/src", SourceRoot{Dir: "./app/src"}},
		{".", SourceRoot{Dir: "."}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePattern(tt.pattern))
		})
	}
}

func TestDirectoryScanner_ScanSources(t *testing.T) {
	tempDir := t.TempDir()

	// tempDir/
	//   Main.java
	//   Main$$ViewInjector.java  (generated, skipped)
	//   ui/Screen.java
	//   ui/widget/Badge.java
	//   vendor/Lib.java          (skipped)
	writeFiles(t, tempDir, map[string]string{
		"Main.java":               "class Main {}",
		"Main$$ViewInjector.java": "class Generated {}",
		"ui/Screen.java":          "class Screen {}",
		"ui/widget/Badge.java":    "class Badge {}",
		"vendor/Lib.java":         "class Lib {}",
	})

	scanner := NewDirectoryScanner()

	t.Run("single directory", func(t *testing.T) {
		files, err := scanner.ScanSources([]string{tempDir})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(tempDir, "Main.java")}, files)
	})

	t.Run("recursive pattern", func(t *testing.T) {
		files, err := scanner.ScanSources([]string{tempDir + "/..."})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(tempDir, "Main.java"),
			filepath.Join(tempDir, "ui", "Screen.java"),
			filepath.Join(tempDir, "ui", "widget", "Badge.java"),
		}, files)
	})

	t.Run("overlapping patterns", func(t *testing.T) {
		files, err := scanner.ScanSources([]string{filepath.Join(tempDir, "ui"), tempDir + "/..."})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(tempDir, "ui", "Screen.java"),
			filepath.Join(tempDir, "Main.java"),
			filepath.Join(tempDir, "ui", "widget", "Badge.java"),
		}, files)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := scanner.ScanSources([]string{filepath.Join(tempDir, "missing")})
		assert.Error(t, err)
	})
}

func TestCleaner_CleanGeneratedFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeFiles(t, tempDir, map[string]string{
		"Main.java":                         "",
		"Main$$ViewInjector.java":           "",
		"ui/Screen$$ViewInjector.java":      "",
		"ui/Outer$Inner$$ViewInjector.java": "",
	})

	cleaner := NewCleaner()

	removed, err := cleaner.CleanGeneratedFiles([]string{tempDir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tempDir, "Main$$ViewInjector.java")}, removed)
	assert.FileExists(t, filepath.Join(tempDir, "ui", "Screen$$ViewInjector.java"))

	removed, err = cleaner.CleanGeneratedFiles([]string{tempDir + "/..."})
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	assert.FileExists(t, filepath.Join(tempDir, "Main.java"))
	assert.NoFileExists(t, filepath.Join(tempDir, "ui", "Screen$$ViewInjector.java"))

	removed, err = cleaner.CleanGeneratedFiles([]string{filepath.Join(tempDir, "missing") + "/..."})
	assert.NoError(t, err)
	assert.Empty(t, removed)
}
