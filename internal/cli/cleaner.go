package cli

import (
	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/utils"
)

// Cleaner handles cleaning up generated files
type Cleaner struct {
	fileProcessor *utils.FileProcessor
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// CleanGeneratedFiles removes every companion file under the given patterns
// and returns the removed paths
func (c *Cleaner) CleanGeneratedFiles(patterns []string) ([]string, error) {
	var removedFiles []string

	for _, pattern := range patterns {
		root := ParsePattern(pattern)
		removed, err := c.fileProcessor.CleanGeneratedFiles(root.Dir, root.Recursive)
		removedFiles = append(removedFiles, removed...)
		if err != nil {
			return removedFiles, errors.WrapWithOperation("clean", root.Dir, err)
		}
	}

	return removedFiles, nil
}
