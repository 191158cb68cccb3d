package typesys

import "fmt"

// TypeInfo is the hierarchy entry for one declared type
type TypeInfo struct {
	Name       string   // fully qualified, nested types joined with '.'
	Super      string   // erasure of the superclass, empty for roots and interfaces
	Interfaces []string // erasures of directly implemented or extended interfaces
	Interface  bool
}

// Universe is the symbol table of a single round
type Universe struct {
	types map[string]*TypeInfo
}

// NewUniverse creates a universe pre-populated with the toolkit types
func NewUniverse() *Universe {
	u := &Universe{types: make(map[string]*TypeInfo)}
	for _, info := range builtinTypes {
		info := info
		u.types[info.Name] = &info
	}
	return u
}

// Declare adds or replaces a type. Classes without an explicit superclass
// extend java.lang.Object.
func (u *Universe) Declare(info TypeInfo) error {
	if info.Name == "" {
		return fmt.Errorf("type name cannot be empty")
	}
	if !info.Interface && info.Super == "" && info.Name != ObjectType {
		info.Super = ObjectType
	}
	u.types[info.Name] = &info
	return nil
}

// Lookup returns the declared type with the given qualified name
func (u *Universe) Lookup(name string) (*TypeInfo, bool) {
	info, ok := u.types[name]
	return info, ok
}

// Has reports whether a type is declared
func (u *Universe) Has(name string) bool {
	_, ok := u.types[name]
	return ok
}

// IsInterface reports whether t names a declared interface
func (u *Universe) IsInterface(t Type) bool {
	if t.IsArray() {
		return false
	}
	info, ok := u.Lookup(t.Name)
	return ok && info.Interface
}

// IsSubtype reports whether a value of type t is assignable to of without a
// cast. Type arguments are ignored.
func (u *Universe) IsSubtype(t, of Type) bool {
	if t.IsZero() || of.IsZero() {
		return false
	}
	if t.Dims != of.Dims {
		// every array is an Object
		return t.Dims > of.Dims && of.Dims == 0 && of.Name == ObjectType
	}
	if primitives[t.Name] || primitives[of.Name] {
		return t.Name == of.Name
	}
	if t.Name == of.Name || of.Name == ObjectType {
		return true
	}
	return u.inherits(t.Name, of.Name, make(map[string]bool))
}

// inherits walks the declared supertypes of name looking for target
func (u *Universe) inherits(name, target string, visited map[string]bool) bool {
	if visited[name] {
		return false
	}
	visited[name] = true

	info, ok := u.Lookup(name)
	if !ok {
		return false
	}
	supers := info.Interfaces
	if info.Super != "" {
		supers = append([]string{info.Super}, supers...)
	}
	for _, super := range supers {
		if super == target || u.inherits(super, target, visited) {
			return true
		}
	}
	return false
}

// Superclass returns the declared superclass of a type, if any
func (u *Universe) Superclass(name string) (string, bool) {
	info, ok := u.Lookup(name)
	if !ok || info.Super == "" {
		return "", false
	}
	return info.Super, true
}
