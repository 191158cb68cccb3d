package cli

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/generator"
	"github.com/toyz/viewinject/internal/models"
	"github.com/toyz/viewinject/internal/parser"
	"github.com/toyz/viewinject/internal/processor"
	"github.com/toyz/viewinject/internal/typesys"
	"github.com/toyz/viewinject/internal/utils"
)

// ErrDiagnostics is returned by Run when the round reported compile
// diagnostics. Valid companions were still written.
var ErrDiagnostics = stderrors.New("annotation processing reported errors")

// descriptorDump renders binding descriptors at debug level
var descriptorDump = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                4,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	SourcesParsed  int
	TypesDeclared  int
	ClassesBound   int
	ErrorsReported int
	GeneratedFiles []string
	StaleRemoved   []string
}

// Generator coordinates one generation round
type Generator struct {
	scanner       *DirectoryScanner
	cleaner       *Cleaner
	parser        *parser.Parser
	codeGenerator *generator.Generator
	fileProcessor *utils.FileProcessor
	reporter      *DiagnosticReporter
	diagnostics   *utils.DiagnosticSystem
	summary       GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:       NewDirectoryScanner(),
		cleaner:       NewCleaner(),
		parser:        parser.NewParser(),
		codeGenerator: generator.NewGenerator(),
		fileProcessor: utils.NewFileProcessor(),
		reporter:      NewDiagnosticReporter(diagnostics),
		diagnostics:   diagnostics,
		summary:       GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// GetSummary returns the generation summary
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes a complete round: scan, parse, bind, emit and write. Companions
// left over from earlier rounds are removed before writing, so a class without
// valid bindings has none. Compile diagnostics are printed after the
// companions are written and turn into ErrDiagnostics. Any other failure
// aborts the round.
func (g *Generator) Run(config Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{GeneratedFiles: make([]string, 0)}
	diags := errors.NewMultipleErrors()

	g.diagnostics.Verbose("Starting code generation at %s", startTime.Format("15:04:05"))
	g.diagnostics.Debug("Scanning directories: %v", config.Directories)

	universe := typesys.NewUniverse()
	if err := config.DeclareTypes(universe); err != nil {
		return err
	}
	g.summary.TypesDeclared = len(config.Types)

	g.diagnostics.StartProgress("Scanning directories for Java sources")
	paths, err := g.scanner.ScanSources(config.Directories)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return err
	}
	if len(paths) == 0 {
		g.diagnostics.EndProgress(false, "")
		return errors.New(errors.FileSystemErrorCode, "no Java sources found in specified directories").
			WithContext("directories", config.Directories).
			WithSuggestions(
				"Check that the specified directories exist and contain .java files",
				"Use the './...' pattern to scan subdirectories",
			)
	}
	g.diagnostics.EndProgress(true, fmt.Sprintf("%d files", len(paths)))

	g.diagnostics.PhaseHeader("Parsing")
	sources := g.parseSources(paths, diags)
	g.summary.SourcesParsed = len(sources)
	g.diagnostics.PhaseItem(fmt.Sprintf("Parsed %d of %d sources", len(sources), len(paths)))

	units, err := parser.Lower(sources, universe)
	if err != nil {
		collect(diags, err)
	}

	g.diagnostics.PhaseHeader("Binding")
	result := processor.NewProcessor(universe).Process(units)
	for _, err := range result.Errors.Errors {
		diags.Add(err)
	}
	g.summary.ClassesBound = len(result.Classes)
	for _, bc := range result.Classes {
		g.diagnostics.Verbose("%s -> %s", bc.TargetClass, bc.FQCN())
		if g.diagnostics.Level() >= utils.DiagnosticDebug {
			g.diagnostics.Debug("%s", descriptorDump.Sdump(bc.Injections()))
		}
	}
	g.diagnostics.PhaseItem(fmt.Sprintf("Bound %d classes", len(result.Classes)))
	if len(result.Classes) == 0 && diags.IsEmpty() {
		g.diagnostics.Warn("no classes with view bindings found")
	}

	files, err := g.codeGenerator.GenerateAll(result.Classes)
	if err != nil {
		collect(diags, err)
	}

	g.diagnostics.PhaseHeader("Writing")
	removed, err := g.removeCompanions(config)
	if err != nil {
		return err
	}
	written := make(map[string]bool, len(files))
	for _, file := range files {
		path := g.outputPath(config.Out, file)
		g.diagnostics.PhaseProgress("Writing " + path)
		if err := g.fileProcessor.WriteFile(path, file.Content); err != nil {
			return err
		}
		g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, path)
		written[absPath(path)] = true
	}
	for _, path := range removed {
		if !written[absPath(path)] {
			g.diagnostics.Info("Removed stale companion %s", path)
			g.summary.StaleRemoved = append(g.summary.StaleRemoved, path)
		}
	}

	g.summary.ErrorsReported = g.reporter.ReportDiagnostics(diags)
	g.diagnostics.Verbose("Generation finished in %s", time.Since(startTime).Round(time.Millisecond))
	if g.summary.ErrorsReported > 0 {
		return ErrDiagnostics
	}
	return nil
}

func (g *Generator) parseSources(paths []string, diags *errors.MultipleErrors) []*parser.SourceFile {
	sources := make([]*parser.SourceFile, 0, len(paths))
	for _, path := range paths {
		source, err := g.parser.ParseFile(path)
		if err != nil {
			collect(diags, err)
			continue
		}
		g.diagnostics.Debug("Parsed %s", path)
		sources = append(sources, source)
	}
	return sources
}

// removeCompanions deletes the companions this round owns: everything under
// the output root, or under the scanned directories when companions live
// next to their sources
func (g *Generator) removeCompanions(config Config) ([]string, error) {
	if config.Out == "" {
		return g.cleaner.CleanGeneratedFiles(config.Directories)
	}
	removed, err := g.fileProcessor.CleanGeneratedFiles(config.Out, true)
	if err != nil {
		return removed, errors.WrapWithOperation("clean", config.Out, err)
	}
	return removed, nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// outputPath places the companion under the output root, or next to the
// target's source file when no root is configured
func (g *Generator) outputPath(out string, file *models.GeneratedFile) string {
	if out != "" {
		return filepath.Join(out, file.Path)
	}
	return filepath.Join(filepath.Dir(file.Class.Target.Loc.File), filepath.Base(file.Path))
}

// collect flattens err into diags
func collect(diags *errors.MultipleErrors, err error) {
	if multi, ok := err.(*errors.MultipleErrors); ok {
		for _, e := range multi.Errors {
			collect(diags, e)
		}
		return
	}
	var coded errors.CodedError
	if stderrors.As(err, &coded) {
		diags.Add(coded)
		return
	}
	diags.Add(errors.Wrap(errors.UnknownErrorCode, err.Error(), err))
}
