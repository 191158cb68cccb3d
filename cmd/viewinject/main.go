package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/toyz/viewinject/internal/cli"
	"github.com/toyz/viewinject/internal/utils"
)

// Globals are flags shared by every command
type Globals struct {
	Verbose bool `help:"Enable verbose output and detailed error reporting." short:"v" xor:"verbosity"`
	Quiet   bool `help:"Only show errors and final results." short:"q" xor:"verbosity"`
	Debug   bool `help:"Also dump binding descriptors." xor:"verbosity"`
}

// CLI is the command tree
type CLI struct {
	Globals

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate view injectors for annotated Java sources."`
	Clean    CleanCmd    `cmd:"" help:"Delete generated view injector files."`
	Version  VersionCmd  `cmd:"" help:"Print version information."`
}

// environment carries the process streams into command handlers
type environment struct {
	stdout io.Writer
	stderr io.Writer
}

func (g *Globals) diagnostics(env *environment) *utils.DiagnosticSystem {
	var d *utils.DiagnosticSystem
	switch {
	case g.Quiet:
		d = utils.NewQuietDiagnostics()
	case g.Debug:
		d = utils.NewDiagnosticSystem(utils.DiagnosticDebug)
	case g.Verbose:
		d = utils.NewVerboseDiagnostics()
	default:
		d = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	if env.stdout != os.Stdout || env.stderr != os.Stderr {
		d.SetOutput(env.stdout, env.stderr)
	}
	return d
}

type GenerateCmd struct {
	Patterns []string `arg:"" optional:"" name:"directory-paths" help:"Directories to scan. A trailing /... scans subdirectories."`
	Out      string   `help:"Output root for generated files. Defaults to the directory of each source." short:"o" type:"path"`
	Config   string   `help:"Config file. viewinject.yaml is used when present." short:"c" type:"path"`
}

func (c *GenerateCmd) Run(globals *Globals, env *environment) error {
	diagnostics := globals.diagnostics(env)
	reporter := cli.NewDiagnosticReporter(diagnostics)

	config, err := c.loadConfig()
	if err != nil {
		reporter.ReportError(err)
		return err
	}
	config.Merge(cli.Config{Directories: c.Patterns, Out: c.Out, Verbose: globals.Verbose || globals.Debug})
	if len(config.Directories) == 0 {
		config.Directories = []string{"./..."}
	}

	diagnostics.Header("generating view injectors")
	for _, dir := range config.Directories {
		diagnostics.SourcePath(dir)
	}
	if globals.Verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.Indent()
		diagnostics.List("Target directories: %s", strings.Join(config.Directories, ", "))
		if config.Out != "" {
			diagnostics.List("Output root: %s", config.Out)
		}
		diagnostics.List("Declared types: %d", len(config.Types))
		diagnostics.Unindent()
	}

	generator := cli.NewGenerator(diagnostics)
	err = generator.Run(*config)
	if err != nil && !stderrors.Is(err, cli.ErrDiagnostics) {
		reporter.ReportError(err)
		return err
	}

	summary := generator.GetSummary()
	diagnostics.Summary("Summary", map[string]interface{}{
		"Sources parsed":  summary.SourcesParsed,
		"Classes bound":   summary.ClassesBound,
		"Files generated": len(summary.GeneratedFiles),
		"Stale removed":   len(summary.StaleRemoved),
		"Errors reported": summary.ErrorsReported,
	})
	diagnostics.GenerationComplete(err != nil)
	return err
}

func (c *GenerateCmd) loadConfig() (*cli.Config, error) {
	path := c.Config
	if path == "" {
		if _, err := os.Stat(cli.DefaultConfigFile); err != nil {
			return &cli.Config{}, nil
		}
		path = cli.DefaultConfigFile
	}
	return cli.LoadConfig(path)
}

type CleanCmd struct {
	Patterns []string `arg:"" optional:"" name:"directory-paths" help:"Directories to clean. A trailing /... cleans subdirectories."`
}

func (c *CleanCmd) Run(globals *Globals, env *environment) error {
	diagnostics := globals.diagnostics(env)
	patterns := c.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	diagnostics.Header("cleaning generated files")
	diagnostics.StartProgress("Cleaning generated files")
	removed, err := cli.NewCleaner().CleanGeneratedFiles(patterns)
	if err != nil {
		diagnostics.EndProgress(false, "")
		cli.NewDiagnosticReporter(diagnostics).ReportError(err)
		return err
	}
	diagnostics.EndProgress(true, fmt.Sprintf("%d files", len(removed)))

	for _, file := range removed {
		diagnostics.Verbose("Removed %s", file)
	}
	diagnostics.Success("Removed %d generated files", len(removed))
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(env *environment) error {
	fmt.Fprintln(env.stdout, Version())
	return nil
}

type exitCode int

// run parses args and executes the selected command, returning the process
// exit status
func run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	var root CLI
	parser, err := kong.New(&root,
		kong.Name("viewinject"),
		kong.Description("Generates view injection companions for @InjectView and listener annotations in Java sources."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitCode(code)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "viewinject: %v\n", err)
		return 2
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	env := &environment{stdout: stdout, stderr: stderr}
	if err := ctx.Run(&root.Globals, env); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
