package parser

import (
	"strconv"
	"strings"

	"github.com/toyz/viewinject/internal/annotations"
	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/models"
	"github.com/toyz/viewinject/internal/typesys"
)

// declaration is the common shape of class, interface and enum declarations
type declaration struct {
	kind       models.TypeKind
	name       *Ident
	typeParams *TypeParams
	extends    []*TypeRef
	implements []*TypeRef
	members    []*Member
}

func (d *TypeDecl) declaration() declaration {
	if d.Enum != nil {
		return declaration{
			kind:       models.EnumKind,
			name:       d.Enum.Name,
			implements: d.Enum.Implements,
			members:    d.Enum.Members,
		}
	}
	kind := models.ClassKind
	if d.Class.Kind == "interface" {
		kind = models.InterfaceKind
	}
	return declaration{
		kind:       kind,
		name:       d.Class.Name,
		typeParams: d.Class.TypeParams,
		extends:    d.Class.Extends,
		implements: d.Class.Implements,
		members:    d.Class.Members,
	}
}

// lowerer converts syntax trees into the element model
type lowerer struct {
	universe *typesys.Universe
	declared map[string]bool
	errs     *errors.MultipleErrors
}

// Lower converts parsed files into compilation units. Every declared type is
// added to the universe before any name is resolved, so references between
// files of the same round resolve regardless of file order. Problems that
// do not prevent lowering, such as duplicate classes or non-constant
// annotation values, are returned together as a MultipleErrors alongside
// the units.
func Lower(files []*SourceFile, universe *typesys.Universe) ([]*models.CompilationUnit, error) {
	l := &lowerer{
		universe: universe,
		declared: make(map[string]bool),
		errs:     errors.NewMultipleErrors(),
	}

	for _, f := range files {
		pkg := dotted(f.Unit.Package)
		for _, top := range f.Unit.Types {
			l.declare(pkg, top.Decl)
		}
	}

	units := make([]*models.CompilationUnit, 0, len(files))
	for _, f := range files {
		units = append(units, l.lowerUnit(f))
	}
	return units, l.errs.ErrOrNil()
}

// declare registers a type and its nested types by name
func (l *lowerer) declare(prefix string, decl *TypeDecl) {
	d := decl.declaration()
	qualified := qualify(prefix, d.name.Value)
	if l.declared[qualified] {
		l.errs.Add(errors.Newf(errors.StructuralErrorCode, "duplicate class: %s", qualified).
			WithLocation(location(d.name.Pos)))
	}
	l.declared[qualified] = true
	_ = l.universe.Declare(typesys.TypeInfo{Name: qualified, Interface: d.kind == models.InterfaceKind})

	for _, m := range d.members {
		if m.Nested != nil {
			l.declare(qualified, m.Nested)
		}
	}
}

func (l *lowerer) lowerUnit(f *SourceFile) *models.CompilationUnit {
	pkg := dotted(f.Unit.Package)
	scope := typesys.NewScope(l.universe, pkg)
	for _, imp := range f.Unit.Imports {
		if imp.Static || len(imp.Parts) == 0 {
			continue
		}
		last := len(imp.Parts) - 1
		if imp.Parts[last] == "*" {
			scope.AddImport(dotted(imp.Parts[:last]), true)
		} else {
			scope.AddImport(dotted(imp.Parts), false)
		}
	}

	unit := &models.CompilationUnit{File: f.Path, Package: pkg}
	for _, top := range f.Unit.Types {
		unit.Types = append(unit.Types, l.lowerType(scope, pkg, nil, top.Prefix, top.Decl))
	}
	return unit
}

func (l *lowerer) lowerType(scope *typesys.Scope, pkg string, enclosing *models.TypeElement, prefix []*Modifier, decl *TypeDecl) *models.TypeElement {
	d := decl.declaration()

	qualified := qualify(pkg, d.name.Value)
	if enclosing != nil {
		qualified = enclosing.QualifiedName + "." + d.name.Value
	}

	mods, _ := l.modifiers(scope, prefix)
	if enclosing != nil && enclosing.Kind == models.InterfaceKind {
		mods |= models.Public | models.Static
	}

	te := &models.TypeElement{
		Kind:          d.kind,
		Package:       pkg,
		Name:          d.name.Value,
		QualifiedName: qualified,
		Modifiers:     mods,
		Enclosing:     enclosing,
		Loc:           location(d.name.Pos),
	}

	// Supertypes see the type's own type variables but not its members
	header := scope.WithTypeVariables(typeParamNames(d.typeParams)...)
	var interfaces []*TypeRef
	switch d.kind {
	case models.InterfaceKind:
		interfaces = d.extends
	case models.EnumKind:
		te.Superclass = typesys.Named("java.lang.Enum")
		interfaces = d.implements
	default:
		te.Superclass = typesys.Named(typesys.ObjectType)
		if len(d.extends) > 0 {
			te.Superclass = l.resolve(header, d.extends[0])
		}
		interfaces = d.implements
	}

	info := typesys.TypeInfo{
		Name:      qualified,
		Super:     te.Superclass.Name,
		Interface: d.kind == models.InterfaceKind,
	}
	for _, ref := range interfaces {
		iface := l.resolve(header, ref)
		te.Interfaces = append(te.Interfaces, iface)
		info.Interfaces = append(info.Interfaces, iface.Name)
	}
	_ = l.universe.Declare(info)

	body := scope.Enter(qualified).WithTypeVariables(typeParamNames(d.typeParams)...)
	for _, m := range d.members {
		switch {
		case m.Nested != nil:
			te.Nested = append(te.Nested, l.lowerType(body, pkg, te, m.Prefix, m.Nested))
		case m.Declaration != nil:
			te.Members = append(te.Members, l.lowerMember(body, te, m.Prefix, m.Declaration)...)
		}
	}
	return te
}

// lowerMember converts a field, method or constructor declaration. A field
// declaration with several declarators yields one element per variable.
func (l *lowerer) lowerMember(scope *typesys.Scope, owner *models.TypeElement, prefix []*Modifier, decl *Declaration) []*models.Element {
	mods, annots := l.modifiers(scope, prefix)
	scope = scope.WithTypeVariables(typeParamNames(decl.TypeParams)...)
	inInterface := owner.Kind == models.InterfaceKind

	switch {
	case decl.Constructor != nil:
		return []*models.Element{{
			Kind:        models.ConstructorElement,
			Name:        "<init>",
			Modifiers:   mods,
			Type:        typesys.Named(typesys.VoidType),
			Parameters:  l.parameters(scope, decl.Constructor.Params),
			Annotations: annots,
			Enclosing:   owner,
			Loc:         location(decl.Type.Pos),
		}}

	case decl.Method != nil:
		if inInterface {
			mods |= models.Public
			if decl.Method.Body == nil && !mods.Has(models.Static) && !mods.Has(models.Default) {
				mods |= models.Abstract
			}
		}
		returnType := l.resolve(scope, decl.Type)
		returnType.Dims += len(decl.Method.Dims)
		return []*models.Element{{
			Kind:        models.MethodElement,
			Name:        decl.Name.Value,
			Modifiers:   mods,
			Type:        returnType,
			Parameters:  l.parameters(scope, decl.Method.Params),
			Annotations: annots,
			Enclosing:   owner,
			Loc:         location(decl.Name.Pos),
		}}

	case decl.Field != nil:
		if inInterface {
			mods |= models.Public | models.Static | models.Final
		}
		base := l.resolve(scope, decl.Type)
		field := func(name *Ident, dims int) *models.Element {
			t := base
			t.Dims += dims
			return &models.Element{
				Kind:        models.FieldElement,
				Name:        name.Value,
				Modifiers:   mods,
				Type:        t,
				Annotations: annots,
				Enclosing:   owner,
				Loc:         location(name.Pos),
			}
		}
		elements := []*models.Element{field(decl.Name, len(decl.Field.Dims))}
		for _, more := range decl.Field.More {
			elements = append(elements, field(more.Name, len(more.Dims)))
		}
		return elements
	}
	return nil
}

func (l *lowerer) parameters(scope *typesys.Scope, params []*Param) []models.Parameter {
	out := make([]models.Parameter, 0, len(params))
	for _, p := range params {
		t := l.resolve(scope, p.Type)
		t.Dims += len(p.Dims)
		if p.Varargs {
			t.Dims++
		}
		out = append(out, models.Parameter{Name: p.Name.Value, Type: t})
	}
	return out
}

// modifiers splits a modifier list into keyword bits and binding annotations.
// Annotations outside the binding set are dropped.
func (l *lowerer) modifiers(scope *typesys.Scope, prefix []*Modifier) (models.Modifier, []models.Annotation) {
	var mods models.Modifier
	var annots []models.Annotation
	for _, m := range prefix {
		if m.Annotation == nil {
			if bit, ok := models.ParseModifier(m.Keyword); ok {
				mods |= bit
			}
			continue
		}
		if a, ok := l.annotation(scope, m.Annotation); ok {
			annots = append(annots, a)
		}
	}
	return mods, annots
}

func (l *lowerer) annotation(scope *typesys.Scope, a *Annotation) (models.Annotation, bool) {
	resolved := scope.ResolveName(dotted(a.Name))
	if !strings.HasPrefix(resolved, annotations.Package+".") {
		return models.Annotation{}, false
	}
	kind, err := annotations.ParseKind(resolved)
	if err != nil {
		return models.Annotation{}, false
	}
	return models.Annotation{
		Kind: kind,
		IDs:  l.ids(a.value()),
		Loc:  location(a.Pos),
	}, true
}

// value returns the "value" element of an annotation, or nil
func (a *Annotation) value() *ElementValue {
	if a.Args == nil {
		return nil
	}
	if a.Args.Value != nil {
		return a.Args.Value
	}
	for _, pair := range a.Args.Pairs {
		if pair.Key == "value" {
			return pair.Value
		}
	}
	return nil
}

// ids flattens an annotation value into canonical ID tokens
func (l *lowerer) ids(v *ElementValue) []string {
	switch {
	case v == nil:
		return nil
	case v.Array:
		var ids []string
		for _, elem := range v.Elements {
			ids = append(ids, l.ids(elem)...)
		}
		return ids
	case v.Annotation != nil:
		l.errs.Add(errors.New(errors.DataErrorCode, "annotation value must be a constant expression").
			WithLocation(location(v.Pos)))
		return nil
	default:
		return []string{CanonicalID(strings.Join(v.Expr, ""))}
	}
}

// CanonicalID normalises an ID expression. Integer literals in any radix
// become their decimal form; anything else, such as R.id.title, is kept as
// written.
func CanonicalID(expr string) string {
	digits := strings.TrimRight(strings.ReplaceAll(expr, "_", ""), "lL")
	if v, err := strconv.ParseInt(digits, 0, 64); err == nil {
		return strconv.FormatInt(v, 10)
	}
	return expr
}

func (l *lowerer) resolve(scope *typesys.Scope, ref *TypeRef) typesys.Type {
	t := typesys.Type{
		Name: scope.ResolveName(dotted(ref.Name)),
		Dims: len(ref.Dims),
	}
	for _, arg := range ref.Args {
		t.Args = append(t.Args, l.typeArgument(scope, arg))
	}
	return t
}

func (l *lowerer) typeArgument(scope *typesys.Scope, arg *TypeArg) string {
	switch {
	case arg.Wildcard && arg.BoundType != nil:
		return "? " + arg.Bound + " " + l.resolve(scope, arg.BoundType).String()
	case arg.Wildcard:
		return "?"
	default:
		return l.resolve(scope, arg.Type).String()
	}
}

func typeParamNames(params *TypeParams) []string {
	if params == nil {
		return nil
	}
	names := make([]string, 0, len(params.Params))
	for _, p := range params.Params {
		names = append(names, p.Name)
	}
	return names
}
