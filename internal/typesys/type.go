// Package typesys models the Java types the generator reasons about: the
// toolkit classes it knows by name and every class declared in the sources
// of the current round.
package typesys

import (
	"strings"
)

// Well-known type names
const (
	ObjectType = "java.lang.Object"
	ViewType   = "android.view.View"
	VoidType   = "void"
)

var primitives = map[string]bool{
	"boolean": true,
	"byte":    true,
	"char":    true,
	"short":   true,
	"int":     true,
	"long":    true,
	"float":   true,
	"double":  true,
}

// Type is a resolved type reference. Name is the erasure: a fully qualified
// class name, a primitive keyword, or void.
type Type struct {
	Name string
	Args []string // rendered, already resolved type arguments
	Dims int      // array dimensions
}

// Named returns a non-generic, non-array type
func Named(name string) Type {
	return Type{Name: name}
}

// Parse reads a rendered type such as "android.widget.AdapterView<?>" or
// "int[]". Type arguments are kept verbatim.
func Parse(s string) Type {
	s = strings.TrimSpace(s)
	var t Type
	for strings.HasSuffix(s, "[]") {
		t.Dims++
		s = strings.TrimSpace(strings.TrimSuffix(s, "[]"))
	}
	if i := strings.IndexByte(s, '<'); i >= 0 && strings.HasSuffix(s, ">") {
		t.Args = splitArgs(s[i+1 : len(s)-1])
		s = s[:i]
	}
	t.Name = s
	return t
}

// splitArgs splits a type argument list on top-level commas
func splitArgs(s string) []string {
	var args []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(s[start:]); rest != "" {
		args = append(args, rest)
	}
	return args
}

// String renders the type the way javac prints a type mirror
func (t Type) String() string {
	var b strings.Builder
	b.WriteString(t.Name)
	if len(t.Args) > 0 {
		b.WriteByte('<')
		b.WriteString(strings.Join(t.Args, ","))
		b.WriteByte('>')
	}
	for i := 0; i < t.Dims; i++ {
		b.WriteString("[]")
	}
	return b.String()
}

// Erasure drops the type arguments
func (t Type) Erasure() Type {
	return Type{Name: t.Name, Dims: t.Dims}
}

// IsZero reports whether the type is unset
func (t Type) IsZero() bool {
	return t.Name == ""
}

// IsPrimitive reports whether the type is a primitive, non-array type
func (t Type) IsPrimitive() bool {
	return t.Dims == 0 && primitives[t.Name]
}

// IsArray reports whether the type has array dimensions
func (t Type) IsArray() bool {
	return t.Dims > 0
}

// IsPrimitiveName reports whether name is a primitive keyword
func IsPrimitiveName(name string) bool {
	return primitives[name] || name == VoidType
}
