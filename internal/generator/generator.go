// Package generator renders binding descriptors into companion Java classes.
package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/models"
	"github.com/toyz/viewinject/internal/templates"
	"github.com/toyz/viewinject/internal/typesys"
)

// Types every companion class refers to by simple name
const (
	finderType = "butterknife.ButterKnife.Finder"
)

// Generator renders companion classes
type Generator struct{}

// NewGenerator creates a new code generator instance
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateAll renders every descriptor. A failure for one class does not
// stop the others; all failures are returned together.
func (g *Generator) GenerateAll(classes []*models.BindingClass) ([]*models.GeneratedFile, error) {
	errs := errors.NewMultipleErrors()
	files := make([]*models.GeneratedFile, 0, len(classes))
	for _, bc := range classes {
		file, err := g.Generate(bc)
		if err != nil {
			errs.Add(errors.WrapGenerateError(bc.FQCN(), err))
			continue
		}
		files = append(files, file)
	}
	return files, errs.ErrOrNil()
}

// Generate renders the companion class of a single descriptor
func (g *Generator) Generate(bc *models.BindingClass) (*models.GeneratedFile, error) {
	if bc == nil {
		return nil, fmt.Errorf("binding class cannot be nil")
	}

	injectBody, err := g.injectBody(bc)
	if err != nil {
		return nil, err
	}

	imports := templates.NewImportManager(bc.ClassPackage)
	imports.AddImport(typesys.ViewType)
	imports.AddImport(finderType)

	content, err := templates.GenerateInjector(templates.InjectorData{
		Package:     bc.ClassPackage,
		Imports:     imports.GenerateImports(),
		ClassName:   bc.ClassName,
		TargetClass: bc.TargetClass,
		InjectBody:  injectBody,
		ResetBody:   g.resetBody(bc),
	})
	if err != nil {
		return nil, errors.WrapTemplateError(templates.InjectorTemplateName, "render", err)
	}

	return &models.GeneratedFile{
		Class:   bc,
		Path:    OutputPath(bc),
		Content: content,
	}, nil
}

// OutputPath is the companion's path relative to the output root, e.g.
// com/example/Main$$ViewInjector.java
func OutputPath(bc *models.BindingClass) string {
	var parts []string
	if bc.ClassPackage != "" {
		parts = strings.Split(bc.ClassPackage, ".")
	}
	parts = append(parts, bc.ClassName+".java")
	return filepath.Join(parts...)
}

func (g *Generator) injectBody(bc *models.BindingClass) (string, error) {
	w := newSourceWriter(2)
	if bc.Parent != nil {
		w.line("%s.inject(finder, target, source);", bc.Parent.FQCN())
		w.blank()
	}

	w.line("View view;")
	for _, injection := range bc.Injections() {
		if err := g.writeInjection(w, injection); err != nil {
			return "", err
		}
	}
	return w.String(), nil
}

// writeInjection emits one lookup followed by everything bound to it. A
// single required binding turns the lookup into a required one and leaves
// the bindings unguarded; otherwise they only run when the view exists.
func (g *Generator) writeInjection(w *sourceWriter, v *models.ViewInjection) error {
	w.line("view = finder.findById(source, %s);", v.ID)

	required := v.RequiredBindings()
	if len(required) > 0 {
		w.line("if (view == null) {")
		w.indent()
		w.line(`throw new IllegalStateException("Required view with id '%s' for %s was not found. If this view is optional add '@Optional' annotation.");`,
			v.ID, describe(required))
		w.dedent()
		w.line("}")
	} else {
		w.line("if (view != null) {")
		w.indent()
	}

	for _, field := range v.Fields {
		if field.RequiresCast() {
			w.line("target.%s = (%s) view;", field.Name, field.Type)
		} else {
			w.line("target.%s = view;", field.Name)
		}
	}
	for _, group := range v.Listeners {
		listener, err := renderListener(group)
		if err != nil {
			return err
		}
		w.block(listener)
	}

	if len(required) == 0 {
		w.dedent()
		w.line("}")
	}
	return nil
}

// renderListener renders the anonymous listener for one listener group
func renderListener(group *models.ListenerBinding) (string, error) {
	spec := group.Spec

	receiver := "view"
	if spec.TargetType != typesys.ViewType {
		receiver = fmt.Sprintf("((%s) view)", spec.TargetType)
	}

	calls := make([]string, 0, len(group.Methods))
	for _, method := range group.Methods {
		call := fmt.Sprintf("target.%s(%s);", method.Name, arguments(method.Arguments))
		if spec.ReturnsValue() {
			call = "return " + call
		}
		calls = append(calls, call)
	}

	listener, err := templates.GenerateListener(templates.ListenerData{
		Receiver:   receiver,
		Setter:     spec.Setter,
		Type:       spec.Type,
		Method:     spec.Method,
		ReturnType: spec.ReturnType,
		Parameters: spec.Parameters,
		Calls:      calls,
	})
	if err != nil {
		return "", errors.WrapTemplateError(templates.ListenerTemplateName, "render", err)
	}
	return listener, nil
}

func arguments(args []models.Argument) string {
	rendered := make([]string, len(args))
	for i, arg := range args {
		if arg.Cast {
			rendered[i] = fmt.Sprintf("(%s) p%d", arg.Type, arg.ListenerPosition)
		} else {
			rendered[i] = fmt.Sprintf("p%d", arg.ListenerPosition)
		}
	}
	return strings.Join(rendered, ", ")
}

func (g *Generator) resetBody(bc *models.BindingClass) string {
	w := newSourceWriter(2)
	fields := bc.FieldBindings()
	if bc.Parent != nil {
		w.line("%s.reset(target);", bc.Parent.FQCN())
		if len(fields) > 0 {
			w.blank()
		}
	}
	for _, field := range fields {
		w.line("target.%s = null;", field.Name)
	}
	return w.String()
}

// describe lists the required bindings for the runtime failure message:
// "field 'a'", "field 'a' and method 'b'", "field 'a', field 'b', and method 'c'"
func describe(bindings []models.Binding) string {
	names := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.Description()
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
