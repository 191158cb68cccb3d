package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activitySource = `package com.example;

import android.app.Activity;
import android.widget.TextView;
import butterknife.InjectView;
import butterknife.OnClick;

public class MainActivity extends Activity {
  @InjectView(1) TextView title;
  @OnClick(2) void submit() {}
}
`

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestHelp(t *testing.T) {
	code, stdout, _ := runCLI("--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "viewinject")
	assert.Contains(t, stdout, "generate")
	assert.Contains(t, stdout, "clean")
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI("version")
	assert.Equal(t, 0, code)
	assert.NotEmpty(t, strings.TrimSpace(stdout))
}

func TestConflictingVerbosityFlags(t *testing.T) {
	code, _, stderr := runCLI("--quiet", "--verbose", "version")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "--quiet")
}

func TestGenerateAndClean(t *testing.T) {
	tempDir := t.TempDir()
	srcDir := filepath.Join(tempDir, "src", "com", "example")
	writeSource(t, srcDir, "MainActivity.java", activitySource)
	generated := filepath.Join(srcDir, "MainActivity$$ViewInjector.java")

	code, stdout, stderr := runCLI("generate", tempDir+"/...")
	assert.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Files generated: 1")
	assert.Contains(t, stdout, "generation complete!")
	assert.FileExists(t, generated)

	code, stdout, _ = runCLI("clean", tempDir+"/...")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Removed 1 generated files")
	assert.NoFileExists(t, generated)
	assert.FileExists(t, filepath.Join(srcDir, "MainActivity.java"))
}

func TestGenerateIsDefaultCommand(t *testing.T) {
	tempDir := t.TempDir()
	writeSource(t, tempDir, "MainActivity.java", activitySource)
	out := filepath.Join(tempDir, "generated")

	code, _, stderr := runCLI("--quiet", tempDir, "--out", out)
	assert.Equal(t, 0, code, stderr)
	assert.FileExists(t, filepath.Join(out, "com", "example", "MainActivity$$ViewInjector.java"))
}

func TestGenerateWithConfig(t *testing.T) {
	tempDir := t.TempDir()
	writeSource(t, tempDir, "Screen.java", `package com.example;
import android.app.Activity;
import butterknife.InjectView;
import com.example.widget.BadgeView;
public class Screen extends Activity {
  @InjectView(3) BadgeView badge;
}
`)
	configPath := filepath.Join(tempDir, "viewinject.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`version: v1.0.0
directories:
  - `+tempDir+`
types:
  - name: com.example.widget.BadgeView
    super: android.widget.TextView
`), 0o644))

	code, _, stderr := runCLI("generate", "--quiet", "--config", configPath)
	assert.Equal(t, 0, code, stderr)
	assert.FileExists(t, filepath.Join(tempDir, "Screen$$ViewInjector.java"))
}

func TestGenerateReportsErrors(t *testing.T) {
	tempDir := t.TempDir()
	writeSource(t, tempDir, "Broken.java", `package com.example;
import android.app.Activity;
import butterknife.OnClick;
public class Broken extends Activity {
  @OnClick(1) String submit() { return null; }
}
`)

	code, _, stderr := runCLI("generate", "--quiet", tempDir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Broken.java:5:")
	assert.Contains(t, stderr, "error: @OnClick methods must have a 'void' return type. (com.example.Broken.submit)")
	assert.NotContains(t, stderr, "Code Generation Failed")
}

func TestGenerateFatalError(t *testing.T) {
	code, _, stderr := runCLI("generate", "--quiet", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "ERROR: Code Generation Failed")
	assert.Contains(t, stderr, "FileSystemError")
}

func TestGenerateBadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "viewinject.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: v2.0.0\n"), 0o644))

	code, _, stderr := runCLI("generate", "--config", configPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "ConfigurationError")
}
