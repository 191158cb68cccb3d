package templates

import (
	"fmt"
	"sort"
	"strings"
)

// ImportManager handles import generation and deduplication
type ImportManager struct {
	pkg     string
	imports map[string]bool
}

// NewImportManager creates an import manager for a file in the given package
func NewImportManager(pkg string) *ImportManager {
	return &ImportManager{
		pkg:     pkg,
		imports: make(map[string]bool),
	}
}

// AddImport adds a single-type import. Types from java.lang and from the
// file's own package need no import and are ignored.
func (im *ImportManager) AddImport(qualified string) {
	if qualified == "" {
		return
	}
	i := strings.LastIndexByte(qualified, '.')
	if i < 0 {
		return
	}
	if owner := qualified[:i]; owner == "java.lang" || owner == im.pkg {
		return
	}
	im.imports[qualified] = true
}

// GenerateImports renders the sorted import statements, one per line
func (im *ImportManager) GenerateImports() string {
	if len(im.imports) == 0 {
		return ""
	}

	var sorted []string
	for imp := range im.imports {
		sorted = append(sorted, imp)
	}
	sort.Strings(sorted)

	var result strings.Builder
	for _, imp := range sorted {
		result.WriteString(fmt.Sprintf("import %s;\n", imp))
	}
	return result.String()
}
