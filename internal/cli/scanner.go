package cli

import (
	"path/filepath"
	"strings"

	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/utils"
)

// SourceRoot is one directory argument after pattern expansion
type SourceRoot struct {
	Dir       string
	Recursive bool
}

// ParsePattern splits a Go-style "./..." pattern into a directory and a
// recursion flag
func ParsePattern(pattern string) SourceRoot {
	if pattern == "..." {
		return SourceRoot{Dir: ".", Recursive: true}
	}
	if strings.HasSuffix(pattern, "/...") {
		baseDir := strings.TrimSuffix(pattern, "/...")
		if baseDir == "" {
			baseDir = "."
		}
		return SourceRoot{Dir: baseDir, Recursive: true}
	}
	return SourceRoot{Dir: pattern}
}

// DirectoryScanner handles directory scanning for Java sources
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// ScanSources returns every Java source under the given patterns. Patterns
// ending in "/..." are scanned recursively. Files reachable from several
// patterns are returned once, in first-seen order.
func (s *DirectoryScanner) ScanSources(patterns []string) ([]string, error) {
	var sources []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		root := ParsePattern(pattern)
		cleanPath, err := filepath.Abs(root.Dir)
		if err != nil {
			return nil, errors.WrapWithOperation("resolve", root.Dir, err)
		}

		files, err := s.fileProcessor.FindSourceFiles(cleanPath, root.Recursive)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if seen[file] {
				continue
			}
			seen[file] = true
			sources = append(sources, file)
		}
	}

	return sources, nil
}
