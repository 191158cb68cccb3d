package models

import (
	"strings"

	"github.com/toyz/viewinject/internal/annotations"
	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/typesys"
)

// TypeKind distinguishes the declared type forms
type TypeKind int

const (
	ClassKind TypeKind = iota
	InterfaceKind
	EnumKind
)

// String returns the Java keyword for the kind
func (k TypeKind) String() string {
	switch k {
	case InterfaceKind:
		return "interface"
	case EnumKind:
		return "enum"
	default:
		return "class"
	}
}

// Modifier is a bit set of Java modifiers
type Modifier uint

const (
	Public Modifier = 1 << iota
	Protected
	Private
	Static
	Final
	Abstract
	Transient
	Volatile
	Synchronized
	Native
	Default
)

var modifierNames = map[string]Modifier{
	"public":       Public,
	"protected":    Protected,
	"private":      Private,
	"static":       Static,
	"final":        Final,
	"abstract":     Abstract,
	"transient":    Transient,
	"volatile":     Volatile,
	"synchronized": Synchronized,
	"native":       Native,
	"default":      Default,
}

// ParseModifier converts a keyword into its modifier bit
func ParseModifier(keyword string) (Modifier, bool) {
	m, ok := modifierNames[keyword]
	return m, ok
}

// Has reports whether every bit of m is set
func (s Modifier) Has(m Modifier) bool {
	return s&m == m
}

// ElementKind distinguishes members of a type
type ElementKind int

const (
	FieldElement ElementKind = iota
	MethodElement
	ConstructorElement
)

// String returns a lower case description used in diagnostics
func (k ElementKind) String() string {
	switch k {
	case MethodElement:
		return "method"
	case ConstructorElement:
		return "constructor"
	default:
		return "field"
	}
}

// Annotation is one binding annotation attached to an element
type Annotation struct {
	Kind annotations.Kind
	IDs  []string // canonical ID tokens in declared order
	Loc  errors.SourceLocation
}

// Parameter is a declared method parameter
type Parameter struct {
	Name string
	Type typesys.Type
}

// TypeElement is a declared class, interface or enum
type TypeElement struct {
	Kind          TypeKind
	Package       string
	Name          string // simple name
	QualifiedName string // package.Outer.Inner
	Modifiers     Modifier
	Superclass    typesys.Type
	Interfaces    []typesys.Type
	Enclosing     *TypeElement
	Members       []*Element
	Nested        []*TypeElement
	Loc           errors.SourceLocation
}

// BinaryName is the class name inside its package with nested types joined
// by '$', e.g. Outer$Inner
func (t *TypeElement) BinaryName() string {
	if t.Enclosing == nil {
		return t.Name
	}
	return t.Enclosing.BinaryName() + "$" + t.Name
}

// IsPrivate reports whether the type or any enclosing type is private
func (t *TypeElement) IsPrivate() bool {
	for cur := t; cur != nil; cur = cur.Enclosing {
		if cur.Modifiers.Has(Private) {
			return true
		}
	}
	return false
}

// InFrameworkPackage reports whether the type lives in a platform package
func (t *TypeElement) InFrameworkPackage() bool {
	return strings.HasPrefix(t.QualifiedName, "android.") || strings.HasPrefix(t.QualifiedName, "java.")
}

// Walk visits the type and every nested type, depth first in declaration order
func (t *TypeElement) Walk(visit func(*TypeElement)) {
	visit(t)
	for _, nested := range t.Nested {
		nested.Walk(visit)
	}
}

// Element is a field, method or constructor
type Element struct {
	Kind        ElementKind
	Name        string
	Modifiers   Modifier
	Type        typesys.Type // field type or method return type
	Parameters  []Parameter
	Annotations []Annotation
	Enclosing   *TypeElement
	Loc         errors.SourceLocation
}

// Annotation returns the annotation of the given kind, if present
func (e *Element) Annotation(kind annotations.Kind) (Annotation, bool) {
	for _, a := range e.Annotations {
		if a.Kind == kind {
			return a, true
		}
	}
	return Annotation{}, false
}

// HasAnnotation reports whether the element carries the given kind
func (e *Element) HasAnnotation(kind annotations.Kind) bool {
	_, ok := e.Annotation(kind)
	return ok
}

// QualifiedName is the owner's qualified name plus the member name, as used
// in diagnostics
func (e *Element) QualifiedName() string {
	if e.Enclosing == nil {
		return e.Name
	}
	return e.Enclosing.QualifiedName + "." + e.Name
}

// CompilationUnit is one parsed source file
type CompilationUnit struct {
	File    string
	Package string
	Types   []*TypeElement
}
