// Package templates holds the Java source templates used to render
// companion classes, together with the data they are executed with.
package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// InjectorData is the data for the companion class shell
type InjectorData struct {
	Package     string // empty for the default package
	Imports     string // rendered import block, see ImportManager
	ClassName   string
	TargetClass string
	InjectBody  string
	ResetBody   string
}

// ListenerData is the data for one listener registration
type ListenerData struct {
	Receiver   string // view expression the setter is called on
	Setter     string
	Type       string
	Method     string
	ReturnType string
	Parameters []string // callback parameter types, named p0..pN
	Calls      []string // statements forwarding to the target
}

var registry = NewTemplateRegistry()

// GenerateInjector renders a complete companion class
func GenerateInjector(data InjectorData) (string, error) {
	return executeTemplate(InjectorTemplateName, registry.MustGet(InjectorTemplateName), data)
}

// GenerateListener renders a listener registration
func GenerateListener(data ListenerData) (string, error) {
	return executeTemplate(ListenerTemplateName, registry.MustGet(ListenerTemplateName), data)
}

// executeTemplate executes a Go template with the given data
func executeTemplate(name, templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

