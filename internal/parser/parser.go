// Package parser reads Java sources and lowers them into the element model
// the processor works on.
package parser

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/viewinject/internal/errors"
)

// SourceFile is a parsed but not yet lowered compilation unit
type SourceFile struct {
	Path string
	Unit *CompilationUnit
}

// Parser parses Java compilation units
type Parser struct {
	parser *participle.Parser[CompilationUnit]
}

// NewParser creates a new Java parser
func NewParser() *Parser {
	return &Parser{
		parser: participle.MustBuild[CompilationUnit](
			participle.Lexer(javaLexer),
			participle.Elide("Whitespace", "Comment"),
			participle.UseLookahead(4),
		),
	}
}

// ParseFile reads and parses a source file from disk
func (p *Parser) ParseFile(path string) (*SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	return p.ParseSource(path, string(content))
}

// ParseSource parses source text. The filename is only used for positions.
func (p *Parser) ParseSource(filename, source string) (*SourceFile, error) {
	unit, err := p.parser.ParseString(filename, source)
	if err != nil {
		return nil, syntaxError(filename, err)
	}
	return &SourceFile{Path: filename, Unit: unit}, nil
}

// syntaxError converts a participle error into a located syntax error
func syntaxError(filename string, err error) *errors.BaseError {
	var perr participle.Error
	if !stderrors.As(err, &perr) {
		return errors.WrapParseError(filename, err)
	}
	return errors.New(errors.SyntaxErrorCode, perr.Message()).
		WithLocation(location(perr.Position())).
		WithCause(err).
		WithSuggestion("Only declarations are interpreted; check for unbalanced braces or unsupported syntax near this position")
}

// location converts a lexer position
func location(pos lexer.Position) errors.SourceLocation {
	return errors.SourceLocation{
		File:   pos.Filename,
		Line:   pos.Line,
		Column: pos.Column,
	}
}

// qualify joins a package and a relative name
func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

// dotted joins name segments
func dotted(parts []string) string {
	return strings.Join(parts, ".")
}
