package processor

import (
	"sort"

	"github.com/toyz/viewinject/internal/annotations"
	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/models"
	"github.com/toyz/viewinject/internal/typesys"
)

// Result is the outcome of one processing round
type Result struct {
	// Classes holds one descriptor per type with at least one valid
	// binding. Every parent precedes its descendants; ties are ordered by
	// qualified target name.
	Classes []*models.BindingClass
	// Errors holds every diagnostic in discovery order
	Errors *errors.MultipleErrors
}

// Processor runs a single round over a set of compilation units
type Processor struct {
	universe  *typesys.Universe
	validator *Validator
	matcher   *Matcher
}

// NewProcessor creates a processor. The universe must already contain every
// type declared in the round.
func NewProcessor(universe *typesys.Universe) *Processor {
	return &Processor{
		universe:  universe,
		validator: NewValidator(universe),
		matcher:   NewMatcher(universe),
	}
}

// Process builds binding descriptors for the units. Invalid members are
// reported and skipped; the rest of the round continues.
func (p *Processor) Process(units []*models.CompilationUnit) *Result {
	result := &Result{Errors: errors.NewMultipleErrors()}
	collection := Collect(units)

	classes := make(map[*models.TypeElement]*models.BindingClass)
	var order []*models.BindingClass
	for _, te := range collection.Types() {
		for _, target := range collection.Targets(te) {
			if errs := p.validator.Validate(target); len(errs) > 0 {
				for _, err := range errs {
					result.Errors.Add(err)
				}
				continue
			}

			bc, ok := classes[te]
			if !ok {
				bc = models.NewBindingClass(te)
			}
			var err *errors.BaseError
			if target.Kind().IsListener() {
				err = p.bindMethod(bc, target)
			} else {
				err = p.bindField(bc, target)
			}
			if err != nil {
				result.Errors.Add(err)
				continue
			}
			if !ok {
				classes[te] = bc
				order = append(order, bc)
			}
		}
	}

	p.linkParents(order)
	result.Classes = sortClasses(order)
	return result
}

func (p *Processor) bindField(bc *models.BindingClass, t Target) *errors.BaseError {
	element := t.Element
	id := t.Annotation.IDs[0]
	if existing, ok := bc.HasField(id); ok {
		return errors.Newf(errors.DataErrorCode, MsgAlreadyInjected,
			t.Kind(), id, existing.Name, element.Enclosing.QualifiedName, element.Name).
			WithLocation(element.Loc)
	}
	bc.AddField(id, models.FieldBinding{
		Name:     element.Name,
		Type:     element.Type,
		Required: !element.HasAnnotation(annotations.Optional),
	})
	return nil
}

// bindMethod matches the method against its callback and binds it to every
// declared ID. A conflict on any ID leaves the method unbound everywhere.
func (p *Processor) bindMethod(bc *models.BindingClass, t Target) *errors.BaseError {
	element := t.Element
	spec, _ := annotations.Listener(t.Kind())

	args, err := p.matcher.Match(spec, element)
	if err != nil {
		return errors.New(errors.SignatureErrorCode, err.Error()).WithLocation(element.Loc)
	}

	method := models.MethodBinding{
		Name:      element.Name,
		Arguments: args,
		Required:  !element.HasAnnotation(annotations.Optional),
	}

	if spec.ReturnsValue() {
		for _, id := range t.Annotation.IDs {
			if v, ok := bc.Injection(id); ok {
				if group, ok := v.Listener(spec.Kind); ok && len(group.Methods) > 0 {
					return errors.Newf(errors.DataErrorCode, MsgMultipleReturnValue,
						id, element.Enclosing.QualifiedName, element.Name).
						WithLocation(element.Loc)
				}
			}
		}
	}
	for _, id := range t.Annotation.IDs {
		bc.AddMethod(id, spec, method)
	}
	return nil
}

// linkParents points every descriptor at the nearest superclass that has a
// descriptor of its own. Ancestors without bindings are skipped.
func (p *Processor) linkParents(classes []*models.BindingClass) {
	byName := make(map[string]*models.BindingClass, len(classes))
	for _, bc := range classes {
		byName[bc.TargetClass] = bc
	}

	for _, bc := range classes {
		visited := map[string]bool{bc.TargetClass: true}
		name, ok := p.universe.Superclass(bc.TargetClass)
		for ok && !visited[name] {
			if parent, found := byName[name]; found {
				bc.Parent = parent
				break
			}
			visited[name] = true
			name, ok = p.universe.Superclass(name)
		}
	}
}

// sortClasses orders descriptors by inheritance depth, then by name
func sortClasses(classes []*models.BindingClass) []*models.BindingClass {
	depth := func(bc *models.BindingClass) int {
		d := 0
		for cur := bc.Parent; cur != nil && d <= len(classes); cur = cur.Parent {
			d++
		}
		return d
	}

	sorted := make([]*models.BindingClass, len(classes))
	copy(sorted, classes)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := depth(sorted[i]), depth(sorted[j])
		if di != dj {
			return di < dj
		}
		return sorted[i].TargetClass < sorted[j].TargetClass
	})
	return sorted
}
