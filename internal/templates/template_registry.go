package templates

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// Template names
const (
	InjectorTemplateName = "injector"
	ListenerTemplateName = "listener"
)

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerInjectorTemplates()
	registry.registerListenerTemplates()

	return registry
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// registerInjectorTemplates registers the companion class shell. Method
// bodies arrive pre-rendered and pre-indented.
func (tr *TemplateRegistry) registerInjectorTemplates() {
	tr.templates[InjectorTemplateName] = `// Generated code from viewinject. Do not modify!
{{if .Package}}package {{.Package}};

{{end}}{{.Imports}}
public class {{.ClassName}} {
  public static void inject(Finder finder, final {{.TargetClass}} target, Object source) {
{{.InjectBody}}  }

  public static void reset({{.TargetClass}} target) {
{{.ResetBody}}  }
}
`
}

// registerListenerTemplates registers the anonymous listener registration,
// rendered without indentation
func (tr *TemplateRegistry) registerListenerTemplates() {
	tr.templates[ListenerTemplateName] = `{{.Receiver}}.{{.Setter}}(new {{.Type}}() {
  @Override public {{.ReturnType}} {{.Method}}({{range $i, $p := .Parameters}}{{if $i}}, {{end}}{{$p}} p{{$i}}{{end}}) {
{{range .Calls}}    {{.}}
{{end}}  }
});
`
}
