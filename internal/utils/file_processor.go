package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/viewinject/internal/errors"
)

// GeneratedSuffix marks companion sources written by the generator
const GeneratedSuffix = "$$ViewInjector.java"

// FileProcessor finds Java sources and generated companions on disk
type FileProcessor struct {
	directoryFilter DirectoryFilter
}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{
		directoryFilter: DefaultDirectoryFilter(),
	}
}

// FileFilter defines a function that determines whether a file should be processed
type FileFilter func(path string, info os.DirEntry) bool

// DirectoryFilter defines a function that determines whether a directory should be processed
type DirectoryFilter func(path string, info os.DirEntry) bool

// FileWalkOptions configures file walking behavior
type FileWalkOptions struct {
	FileFilter      FileFilter
	DirectoryFilter DirectoryFilter
	Recursive       bool
	SkipErrors      bool
}

// JavaSourceFilter accepts .java files that were not produced by the generator
func JavaSourceFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		name := info.Name()
		return strings.HasSuffix(name, ".java") && !strings.HasSuffix(name, GeneratedSuffix)
	}
}

// GeneratedFileFilter accepts companion files only
func GeneratedFileFilter() FileFilter {
	return func(path string, info os.DirEntry) bool {
		if info.IsDir() {
			return false
		}
		return strings.HasSuffix(info.Name(), GeneratedSuffix)
	}
}

// DefaultDirectoryFilter skips common directories that shouldn't contain source code
func DefaultDirectoryFilter() DirectoryFilter {
	skipDirs := map[string]bool{
		"vendor":       true,
		"node_modules": true,
		"testdata":     true,
		"build":        true,
		"dist":         true,
		"target":       true,
	}

	return func(path string, info os.DirEntry) bool {
		if !info.IsDir() {
			return true
		}

		name := info.Name()

		// Skip hidden directories
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}

		return !skipDirs[name]
	}
}

// WalkFiles returns the files under rootDir accepted by the options, in
// lexical order. The root itself is never filtered out.
func (fp *FileProcessor) WalkFiles(rootDir string, options FileWalkOptions) ([]string, error) {
	var matchedFiles []string

	err := filepath.WalkDir(rootDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			if options.SkipErrors {
				return nil
			}
			return err
		}

		if entry.IsDir() {
			if path == rootDir {
				return nil
			}
			if !options.Recursive {
				return filepath.SkipDir
			}
			if options.DirectoryFilter != nil && !options.DirectoryFilter(path, entry) {
				return filepath.SkipDir
			}
			return nil
		}

		if options.FileFilter == nil || options.FileFilter(path, entry) {
			matchedFiles = append(matchedFiles, path)
		}
		return nil
	})

	return matchedFiles, err
}

// FindSourceFiles lists the Java sources of a directory, descending into
// subdirectories when recursive is set
func (fp *FileProcessor) FindSourceFiles(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.FileSystemErrorCode, "%s is not a directory", dir).
			WithContext("path", dir)
	}

	files, err := fp.WalkFiles(dir, FileWalkOptions{
		FileFilter:      JavaSourceFilter(),
		DirectoryFilter: fp.directoryFilter,
		Recursive:       recursive,
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", dir, err)
	}
	return files, nil
}

// CleanGeneratedFiles removes companion files and returns the removed paths.
// Missing directories are skipped.
func (fp *FileProcessor) CleanGeneratedFiles(dir string, recursive bool) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	files, err := fp.WalkFiles(dir, FileWalkOptions{
		FileFilter:      GeneratedFileFilter(),
		DirectoryFilter: fp.directoryFilter,
		Recursive:       recursive,
		SkipErrors:      true,
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", dir, err)
	}

	var removed []string
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			return removed, errors.WrapFileSystemError("remove", file, err)
		}
		removed = append(removed, file)
	}
	return removed, nil
}

// WriteFile writes content, creating parent directories as needed
func (fp *FileProcessor) WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapFileSystemError("create directory for", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.WrapFileSystemError("write", path, err)
	}
	return nil
}
