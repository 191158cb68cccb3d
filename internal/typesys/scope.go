package typesys

import "strings"

// implicitLang lists java.lang types resolvable without an import even when
// the universe does not declare them
var implicitLang = map[string]bool{
	"Object": true, "String": true, "CharSequence": true, "Integer": true,
	"Long": true, "Boolean": true, "Number": true, "Runnable": true,
	"Override": true, "Deprecated": true, "SuppressWarnings": true,
	"Double": true, "Float": true, "Short": true, "Byte": true, "Character": true,
	"Void": true, "Class": true, "Iterable": true, "Exception": true,
	"RuntimeException": true, "IllegalStateException": true,
}

// Scope resolves simple names inside one compilation unit: imports, the
// unit's package, enclosing types and java.lang.
type Scope struct {
	universe  *Universe
	pkg       string
	imports   map[string]string
	wildcards []string
	enclosing []string // innermost first
	typeVars  map[string]bool
}

// NewScope creates a scope for a compilation unit in the given package
func NewScope(universe *Universe, pkg string) *Scope {
	return &Scope{
		universe: universe,
		pkg:      pkg,
		imports:  make(map[string]string),
	}
}

// Package returns the unit's package
func (s *Scope) Package() string {
	return s.pkg
}

// AddImport registers a single-type import, or an on-demand import when
// wildcard is set (qualified is then the package or type name before ".*")
func (s *Scope) AddImport(qualified string, wildcard bool) {
	if wildcard {
		s.wildcards = append(s.wildcards, qualified)
		return
	}
	simple := qualified
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		simple = qualified[i+1:]
	}
	s.imports[simple] = qualified
}

// Enter returns a child scope for the body of the named type
func (s *Scope) Enter(qualified string) *Scope {
	child := *s
	child.enclosing = append([]string{qualified}, s.enclosing...)
	return &child
}

// WithTypeVariables returns a child scope in which the given names denote
// type variables and resolve to themselves
func (s *Scope) WithTypeVariables(names ...string) *Scope {
	if len(names) == 0 {
		return s
	}
	child := *s
	child.typeVars = make(map[string]bool, len(s.typeVars)+len(names))
	for name := range s.typeVars {
		child.typeVars[name] = true
	}
	for _, name := range names {
		child.typeVars[name] = true
	}
	return &child
}

// ResolveName turns a name as written in source into a qualified name.
// Names that cannot be resolved and contain no dot are assumed to live in
// the unit's package.
func (s *Scope) ResolveName(name string) string {
	if IsPrimitiveName(name) || s.typeVars[name] {
		return name
	}
	head, rest := name, ""
	if i := strings.IndexByte(name, '.'); i >= 0 {
		head, rest = name[:i], name[i:]
	}
	if resolved, ok := s.resolveSimple(head); ok {
		return resolved + rest
	}
	if rest != "" {
		return name
	}
	if s.pkg == "" {
		return name
	}
	return s.pkg + "." + name
}

// resolveSimple resolves a single identifier
func (s *Scope) resolveSimple(name string) (string, bool) {
	for _, outer := range s.enclosing {
		if strings.HasSuffix("."+outer, "."+name) {
			return outer, true
		}
		if nested := outer + "." + name; s.universe.Has(nested) {
			return nested, true
		}
	}
	if qualified, ok := s.imports[name]; ok {
		return qualified, true
	}
	if s.pkg != "" {
		if local := s.pkg + "." + name; s.universe.Has(local) {
			return local, true
		}
	} else if s.universe.Has(name) {
		return name, true
	}
	for _, prefix := range s.wildcards {
		if candidate := prefix + "." + name; s.universe.Has(candidate) {
			return candidate, true
		}
	}
	if lang := "java.lang." + name; s.universe.Has(lang) || implicitLang[name] {
		return lang, true
	}
	return "", false
}
