package models

import (
	"fmt"

	"github.com/toyz/viewinject/internal/annotations"
	"github.com/toyz/viewinject/internal/typesys"
)

// InjectorSuffix is appended to the target's binary name to form the
// companion class name
const InjectorSuffix = "$$ViewInjector"

// Binding is anything bound to a looked-up view
type Binding interface {
	// Description names the binding in runtime failure messages, e.g. "field 'title'"
	Description() string
	IsRequired() bool
}

// FieldBinding assigns the looked-up view to a field of the target
type FieldBinding struct {
	Name     string
	Type     typesys.Type
	Required bool
}

// Description implements Binding
func (f FieldBinding) Description() string {
	return fmt.Sprintf("field '%s'", f.Name)
}

// IsRequired implements Binding
func (f FieldBinding) IsRequired() bool {
	return f.Required
}

// RequiresCast reports whether the view must be narrowed before assignment
func (f FieldBinding) RequiresCast() bool {
	return f.Type.String() != typesys.ViewType
}

// Argument is one argument forwarded from a listener callback to the bound
// method. ListenerPosition indexes the callback's parameter list.
type Argument struct {
	ListenerPosition int
	Type             typesys.Type // declared type of the method parameter
	Cast             bool         // narrow the callback parameter before forwarding
}

// MethodBinding forwards a listener callback to a method of the target
type MethodBinding struct {
	Name      string
	Arguments []Argument
	Required  bool
}

// Description implements Binding
func (m MethodBinding) Description() string {
	return fmt.Sprintf("method '%s'", m.Name)
}

// IsRequired implements Binding
func (m MethodBinding) IsRequired() bool {
	return m.Required
}

// ListenerBinding groups every method bound to one listener kind on one ID
type ListenerBinding struct {
	Spec    annotations.ListenerSpec
	Methods []MethodBinding
}

// ViewInjection collects everything bound to a single view ID
type ViewInjection struct {
	ID        string
	Fields    []FieldBinding
	Listeners []*ListenerBinding
}

// Listener returns the group for a listener kind, if any
func (v *ViewInjection) Listener(kind annotations.Kind) (*ListenerBinding, bool) {
	for _, l := range v.Listeners {
		if l.Spec.Kind == kind {
			return l, true
		}
	}
	return nil, false
}

// AddMethod binds a method to a listener kind. It returns false when the
// listener returns a value and already has a method bound, since only one
// method can supply the return value.
func (v *ViewInjection) AddMethod(spec annotations.ListenerSpec, method MethodBinding) bool {
	group, ok := v.Listener(spec.Kind)
	if !ok {
		group = &ListenerBinding{Spec: spec}
		v.Listeners = append(v.Listeners, group)
	}
	if spec.ReturnsValue() && len(group.Methods) > 0 {
		return false
	}
	group.Methods = append(group.Methods, method)
	return true
}

// RequiredBindings returns the required bindings, fields first, in
// declaration order
func (v *ViewInjection) RequiredBindings() []Binding {
	var required []Binding
	for _, f := range v.Fields {
		if f.Required {
			required = append(required, f)
		}
	}
	for _, l := range v.Listeners {
		for _, m := range l.Methods {
			if m.Required {
				required = append(required, m)
			}
		}
	}
	return required
}

// BindingClass is the descriptor of one companion class
type BindingClass struct {
	ClassPackage string        // package of the target and the companion
	ClassName    string        // e.g. Outer$Inner$$ViewInjector
	TargetClass  string        // e.g. test.Outer.Inner
	Target       *TypeElement  // source declaration
	Parent       *BindingClass // nearest ancestor with bindings, lookup only
	injections   []*ViewInjection
}

// NewBindingClass creates the descriptor for a target type
func NewBindingClass(target *TypeElement) *BindingClass {
	return &BindingClass{
		ClassPackage: target.Package,
		ClassName:    target.BinaryName() + InjectorSuffix,
		TargetClass:  target.QualifiedName,
		Target:       target,
	}
}

// FQCN is the qualified name of the companion class
func (b *BindingClass) FQCN() string {
	if b.ClassPackage == "" {
		return b.ClassName
	}
	return b.ClassPackage + "." + b.ClassName
}

// Injections returns the per-ID injections in first-seen order
func (b *BindingClass) Injections() []*ViewInjection {
	return b.injections
}

// Injection returns the injection for an ID, if any
func (b *BindingClass) Injection(id string) (*ViewInjection, bool) {
	for _, v := range b.injections {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// ensureInjection returns the injection for an ID, creating it if needed
func (b *BindingClass) ensureInjection(id string) *ViewInjection {
	if v, ok := b.Injection(id); ok {
		return v
	}
	v := &ViewInjection{ID: id}
	b.injections = append(b.injections, v)
	return v
}

// HasField reports whether a field is already bound to the ID
func (b *BindingClass) HasField(id string) (FieldBinding, bool) {
	if v, ok := b.Injection(id); ok && len(v.Fields) > 0 {
		return v.Fields[0], true
	}
	return FieldBinding{}, false
}

// AddField binds a field to an ID
func (b *BindingClass) AddField(id string, field FieldBinding) {
	v := b.ensureInjection(id)
	v.Fields = append(v.Fields, field)
}

// AddMethod binds a listener method to an ID, see ViewInjection.AddMethod
func (b *BindingClass) AddMethod(id string, spec annotations.ListenerSpec, method MethodBinding) bool {
	return b.ensureInjection(id).AddMethod(spec, method)
}

// FieldBindings returns every field binding in ID order
func (b *BindingClass) FieldBindings() []FieldBinding {
	var fields []FieldBinding
	for _, v := range b.injections {
		fields = append(fields, v.Fields...)
	}
	return fields
}

// GeneratedFile is one rendered companion source file
type GeneratedFile struct {
	Class   *BindingClass
	Path    string // path relative to the output root, e.g. test/Test$$ViewInjector.java
	Content string
}
