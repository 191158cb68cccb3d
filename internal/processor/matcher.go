package processor

import (
	"fmt"
	"strings"

	"github.com/toyz/viewinject/internal/annotations"
	"github.com/toyz/viewinject/internal/models"
	"github.com/toyz/viewinject/internal/typesys"
)

// Matcher assigns the parameters of an annotated method to the parameters
// of the listener callback it is bound to
type Matcher struct {
	universe *typesys.Universe
}

// NewMatcher creates a matcher over the round's type universe
func NewMatcher(universe *typesys.Universe) *Matcher {
	return &Matcher{universe: universe}
}

// MatchError reports a method parameter that no callback parameter can feed
type MatchError struct {
	Spec      annotations.ListenerSpec
	Method    *models.Element
	Arguments []*models.Argument // nil where no callback parameter matched
}

// Error renders the full matching report
func (e *MatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Unable to match @%s method arguments. (%s)", e.Spec.Kind, e.Method.QualifiedName())
	for i, param := range e.Method.Parameters {
		fmt.Fprintf(&b, "\n\n  Parameter #%d: %s\n    ", i+1, param.Type)
		if arg := e.Arguments[i]; arg != nil {
			fmt.Fprintf(&b, "matched listener parameter #%d: %s", arg.ListenerPosition+1, arg.Type)
		} else {
			b.WriteString("did not match any listener parameters")
		}
	}
	fmt.Fprintf(&b, "\n\nMethods may have up to %d parameter(s):\n", e.Spec.MaxParameters())
	for _, param := range e.Spec.Parameters {
		b.WriteString("\n  ")
		b.WriteString(param)
	}
	b.WriteString("\n\nThese may be listed in any order but will be searched for from top to bottom.")
	return b.String()
}

// Match resolves every method parameter against the callback catalogue.
// Each method parameter takes the first unused callback parameter, scanning
// from the top, that has the same type or can be narrowed to it with a cast.
// Supertypes of a callback parameter never match. A method without
// parameters always matches.
func (m *Matcher) Match(spec annotations.ListenerSpec, method *models.Element) ([]models.Argument, error) {
	params := method.Parameters
	if len(params) == 0 {
		return nil, nil
	}

	catalogue := make([]typesys.Type, len(spec.Parameters))
	for i, p := range spec.Parameters {
		catalogue[i] = typesys.Parse(p)
	}

	used := make([]bool, len(catalogue))
	matched := make([]*models.Argument, len(params))
	for i, param := range params {
		for j, listenerType := range catalogue {
			if used[j] {
				continue
			}
			if arg, ok := m.assign(j, listenerType, param.Type); ok {
				used[j] = true
				matched[i] = &arg
				break
			}
		}
		if matched[i] == nil {
			return nil, &MatchError{Spec: spec, Method: method, Arguments: matched}
		}
	}

	args := make([]models.Argument, len(matched))
	for i, arg := range matched {
		args[i] = *arg
	}
	return args, nil
}

// assign tries to pass callback parameter j, of type listenerType, to a
// method parameter of type paramType
func (m *Matcher) assign(j int, listenerType, paramType typesys.Type) (models.Argument, bool) {
	switch {
	case listenerType.Erasure().String() == paramType.Erasure().String():
		return models.Argument{ListenerPosition: j, Type: paramType}, true
	case listenerType.IsPrimitive() || paramType.IsPrimitive():
		return models.Argument{}, false
	case m.universe.IsInterface(paramType) || m.universe.IsSubtype(paramType, listenerType):
		return models.Argument{ListenerPosition: j, Type: paramType, Cast: true}, true
	}
	return models.Argument{}, false
}
