package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar covers the declaration level of Java: packages, imports, type
// declarations and member signatures. Method bodies and initializers are
// matched as balanced token runs and never interpreted.

var javaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Char", Pattern: `'(\\.|[^'\\])*'`},
	{Name: "Number", Pattern: `0[xX][0-9a-fA-F_]+[lL]?|[0-9][0-9_]*(\.[0-9_]*)?([eE][+-]?[0-9]+)?[lLfFdD]?`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Ellipsis", Pattern: `\.\.\.`},
	{Name: "Punct", Pattern: `[-{}()\[\];,.@<>?=&|!~^%*/+:]`},
})

// CompilationUnit is the root of one source file
type CompilationUnit struct {
	Package []string      `parser:"( 'package' @Ident ( '.' @Ident )* ';' )?"`
	Imports []*ImportDecl `parser:"@@*"`
	Types   []*TopLevel   `parser:"( @@ | ';' )*"`
}

// ImportDecl is a single-type or on-demand import
type ImportDecl struct {
	Static bool     `parser:"'import' @'static'?"`
	Parts  []string `parser:"@Ident ( '.' ( @Ident | @'*' ) )* ';'"`
}

// TopLevel is a type declaration with its modifiers
type TopLevel struct {
	Prefix []*Modifier `parser:"@@*"`
	Decl   *TypeDecl   `parser:"@@"`
}

// Modifier is either an annotation or a modifier keyword
type Modifier struct {
	Annotation *Annotation `parser:"  @@"`
	Keyword    string      `parser:"| @( 'public' | 'protected' | 'private' | 'static' | 'final' | 'abstract' | 'transient' | 'volatile' | 'synchronized' | 'native' | 'strictfp' | 'default' )"`
}

// Annotation is an annotation use such as @OnClick({1, 2})
type Annotation struct {
	Pos  lexer.Position
	Name []string        `parser:"'@' @Ident ( '.' @Ident )*"`
	Args *AnnotationArgs `parser:"( '(' @@? ')' )?"`
}

// AnnotationArgs is either a list of name=value pairs or a single value
type AnnotationArgs struct {
	Pairs []*ElementPair `parser:"  @@ ( ',' @@ )*"`
	Value *ElementValue  `parser:"| @@"`
}

// ElementPair is one name=value annotation argument
type ElementPair struct {
	Key   string        `parser:"@Ident '='"`
	Value *ElementValue `parser:"@@"`
}

// ElementValue is an annotation argument value
type ElementValue struct {
	Pos        lexer.Position
	Array      bool            `parser:"(  @'{'"`
	Elements   []*ElementValue `parser:"   ( @@ ( ',' @@ )* )? ','? '}'"`
	Annotation *Annotation     `parser:"| @@"`
	Expr       []string        `parser:"| @~( ',' | ')' | '}' | '{' )+ )"`
}

// TypeDecl is a class, interface or enum declaration
type TypeDecl struct {
	Enum  *EnumDecl  `parser:"  @@"`
	Class *ClassDecl `parser:"| @@"`
}

// ClassDecl is a class or interface declaration
type ClassDecl struct {
	Kind       string      `parser:"@( 'class' | 'interface' )"`
	Name       *Ident      `parser:"@@"`
	TypeParams *TypeParams `parser:"@@?"`
	Extends    []*TypeRef  `parser:"( 'extends' @@ ( ',' @@ )* )?"`
	Implements []*TypeRef  `parser:"( 'implements' @@ ( ',' @@ )* )?"`
	Members    []*Member   `parser:"'{' @@* '}'"`
}

// EnumDecl is an enum declaration
type EnumDecl struct {
	Name       *Ident          `parser:"'enum' @@"`
	Implements []*TypeRef      `parser:"( 'implements' @@ ( ',' @@ )* )?"`
	Constants  []*EnumConstant `parser:"'{' ( @@ ( ',' @@ )* )? ','?"`
	Members    []*Member       `parser:"( ';' @@* )? '}'"`
}

// EnumConstant is one enum constant with optional arguments and body
type EnumConstant struct {
	Prefix []*Modifier `parser:"@@*"`
	Name   *Ident      `parser:"@@"`
	Args   *Parens     `parser:"@@?"`
	Body   *Block      `parser:"@@?"`
}

// Member is a declaration inside a type body
type Member struct {
	Prefix      []*Modifier  `parser:"@@*"`
	Nested      *TypeDecl    `parser:"( @@"`
	Initializer *Block       `parser:"| @@"`
	Declaration *Declaration `parser:"| @@"`
	Empty       bool         `parser:"| @';' )"`
}

// Declaration is a field, method or constructor declaration after its modifiers
type Declaration struct {
	TypeParams  *TypeParams `parser:"@@?"`
	Type        *TypeRef    `parser:"@@"`
	Constructor *MethodRest `parser:"( @@"`
	Name        *Ident      `parser:"| @@"`
	Method      *MethodRest `parser:"  ( @@"`
	Field       *FieldRest  `parser:"  | @@ ) )"`
}

// MethodRest is everything after a method or constructor name
type MethodRest struct {
	Params  []*Param      `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
	Dims    []string      `parser:"( @'[' ']' )*"`
	Throws  []*TypeRef    `parser:"( 'throws' @@ ( ',' @@ )* )?"`
	Default *ElementValue `parser:"( 'default' @@ )?"`
	Body    *Block        `parser:"( @@ | ';' )"`
}

// Param is a formal method parameter
type Param struct {
	Prefix  []*Modifier `parser:"@@*"`
	Type    *TypeRef    `parser:"@@"`
	Varargs bool        `parser:"@'...'?"`
	Name    *Ident      `parser:"@@"`
	Dims    []string    `parser:"( @'[' ']' )*"`
}

// FieldRest is everything after the first declarator name of a field.
// Initializers swallow everything up to the terminating semicolon.
type FieldRest struct {
	Dims []string      `parser:"( @'[' ']' )*"`
	Init *Initializer  `parser:"( '=' @@ )?"`
	More []*Declarator `parser:"( ',' @@ )* ';'"`
}

// Declarator is an additional variable in a field declaration
type Declarator struct {
	Name *Ident       `parser:"@@"`
	Dims []string     `parser:"( @'[' ']' )*"`
	Init *Initializer `parser:"( '=' @@ )?"`
}

// Initializer is an unparsed field initializer
type Initializer struct {
	Chunks []*Chunk `parser:"@@+"`
}

// Chunk is a balanced piece of an initializer
type Chunk struct {
	Block  *Block  `parser:"  @@"`
	Parens *Parens `parser:"| @@"`
	Token  string  `parser:"| @~( ';' | '{' | '}' | '(' | ')' )"`
}

// Block is a balanced brace-delimited token run
type Block struct {
	Items []*BlockItem `parser:"'{' @@* '}'"`
}

// BlockItem is a nested block or any other token
type BlockItem struct {
	Nested *Block `parser:"  @@"`
	Token  string `parser:"| @~( '{' | '}' )"`
}

// Parens is a balanced parenthesised token run
type Parens struct {
	Items []*ParenItem `parser:"'(' @@* ')'"`
}

// ParenItem is a nested group or any other token
type ParenItem struct {
	Nested *Parens `parser:"  @@"`
	Token  string  `parser:"| @~( '(' | ')' )"`
}

// TypeParams declares generic type variables
type TypeParams struct {
	Params []*TypeParam `parser:"'<' @@ ( ',' @@ )* '>'"`
}

// TypeParam is one type variable with optional bounds
type TypeParam struct {
	Name   string     `parser:"@Ident"`
	Bounds []*TypeRef `parser:"( 'extends' @@ ( '&' @@ )* )?"`
}

// TypeRef is a type as written in source
type TypeRef struct {
	Pos  lexer.Position
	Name []string   `parser:"@Ident ( '.' @Ident )*"`
	Args []*TypeArg `parser:"( '<' ( @@ ( ',' @@ )* )? '>' )?"`
	Dims []string   `parser:"( @'[' ']' )*"`
}

// TypeArg is a type argument, possibly a bounded wildcard
type TypeArg struct {
	Wildcard  bool     `parser:"(  @'?'"`
	Bound     string   `parser:"   ( @( 'extends' | 'super' )"`
	BoundType *TypeRef `parser:"     @@ )?"`
	Type      *TypeRef `parser:"| @@ )"`
}

// Ident is an identifier with its position
type Ident struct {
	Pos   lexer.Position
	Value string `parser:"@Ident"`
}
