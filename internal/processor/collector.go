// Package processor turns annotated elements into binding descriptors. It
// collects annotated members per enclosing type, validates them, matches
// listener methods against their callback signatures and links every
// descriptor to its nearest ancestor with bindings.
package processor

import (
	"github.com/toyz/viewinject/internal/annotations"
	"github.com/toyz/viewinject/internal/models"
)

// Target is one (annotation, member) pair awaiting validation
type Target struct {
	Annotation models.Annotation
	Element    *models.Element
}

// Kind returns the annotation kind of the target
func (t Target) Kind() annotations.Kind {
	return t.Annotation.Kind
}

// Collection groups targets by enclosing type
type Collection struct {
	types   []*models.TypeElement
	targets map[*models.TypeElement][]Target
}

// Collect walks every unit once per binding kind. Within a type, targets are
// ordered by kind (field injections first, then listeners in catalogue
// order) and then by declaration order. Types appear in the order their
// first target was found.
func Collect(units []*models.CompilationUnit) *Collection {
	c := &Collection{targets: make(map[*models.TypeElement][]Target)}
	for _, kind := range annotations.BindingKinds() {
		for _, unit := range units {
			for _, typ := range unit.Types {
				typ.Walk(func(te *models.TypeElement) {
					c.collectMembers(te, kind)
				})
			}
		}
	}
	return c
}

func (c *Collection) collectMembers(te *models.TypeElement, kind annotations.Kind) {
	for _, member := range te.Members {
		a, ok := member.Annotation(kind)
		if !ok {
			continue
		}
		if _, seen := c.targets[te]; !seen {
			c.types = append(c.types, te)
		}
		c.targets[te] = append(c.targets[te], Target{Annotation: a, Element: member})
	}
}

// Types returns the enclosing types that carry at least one target
func (c *Collection) Types() []*models.TypeElement {
	return c.types
}

// Targets returns the targets declared directly in a type
func (c *Collection) Targets(te *models.TypeElement) []Target {
	return c.targets[te]
}
