package processor_test

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/generator"
	"github.com/toyz/viewinject/internal/parser"
	"github.com/toyz/viewinject/internal/processor"
	"github.com/toyz/viewinject/internal/typesys"
)

// Each archive under testdata holds Java inputs, the companions expected
// under want/, and optionally an "errors" file listing the expected
// diagnostics as "file:line: message".
func TestGolden(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(strings.TrimSuffix(filepath.Base(path), ".txtar"), func(t *testing.T) {
			archive, err := txtar.ParseFile(path)
			require.NoError(t, err)
			runGolden(t, archive)
		})
	}
}

func runGolden(t *testing.T, archive *txtar.Archive) {
	p := parser.NewParser()
	var sources []*parser.SourceFile
	want := make(map[string]string)
	wantErrors := ""

	for _, f := range archive.Files {
		switch {
		case f.Name == "errors":
			wantErrors = string(f.Data)
		case strings.HasPrefix(f.Name, "want/"):
			want[strings.TrimPrefix(f.Name, "want/")] = string(f.Data)
		default:
			source, err := p.ParseSource(f.Name, string(f.Data))
			require.NoError(t, err, f.Name)
			sources = append(sources, source)
		}
	}

	universe := typesys.NewUniverse()
	units, err := parser.Lower(sources, universe)
	require.NoError(t, err)

	result := processor.NewProcessor(universe).Process(units)
	assert.Equal(t, wantErrors, formatDiagnostics(result.Errors))

	files, err := generator.NewGenerator().GenerateAll(result.Classes)
	require.NoError(t, err)

	got := make(map[string]string, len(files))
	for _, f := range files {
		got[filepath.ToSlash(f.Path)] = f.Content
	}
	assert.Equal(t, keys(want), keys(got))
	for path, content := range want {
		assert.Equal(t, content, got[path], path)
	}
}

func formatDiagnostics(errs *errors.MultipleErrors) string {
	var b strings.Builder
	for _, err := range errs.Errors {
		base, ok := err.(*errors.BaseError)
		if !ok {
			fmt.Fprintln(&b, err.Error())
			continue
		}
		fmt.Fprintf(&b, "%s:%d: %s\n", base.Loc.File, base.Loc.Line, base.Message)
	}
	return b.String()
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
