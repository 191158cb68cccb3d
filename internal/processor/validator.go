package processor

import (
	"fmt"

	"github.com/toyz/viewinject/internal/annotations"
	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/models"
	"github.com/toyz/viewinject/internal/typesys"
)

// Diagnostic message templates
const (
	MsgWrongElement        = "@%s may only be applied to %s. (%s.%s)"
	MsgNotInClass          = "@%s %s may only be contained in classes. (%s.%s)"
	MsgInPrivateClass      = "@%s %s may not be contained in private classes. (%s.%s)"
	MsgFrameworkPackage    = "@%s-annotated class incorrectly in Android framework package. (%s)"
	MsgPrivateOrStatic     = "@%s %s must not be private or static. (%s.%s)"
	MsgReturnType          = "@%s methods must have a '%s' return type. (%s.%s)"
	MsgTooManyParameters   = "@%s methods can have at most %d parameter(s). (%s.%s)"
	MsgNoIDs               = "@%s annotation must specify at least one ID. (%s.%s)"
	MsgSingleID            = "@%s fields must specify exactly one ID. (%s.%s)"
	MsgDuplicateID         = "@%s annotation for method contains duplicate ID %s. (%s.%s)"
	MsgFieldType           = "@%s fields must extend from View or be an interface. (%s.%s)"
	MsgAlreadyInjected     = "Attempt to use @%s for an already injected ID %s on '%s'. (%s.%s)"
	MsgMultipleReturnValue = "Multiple listener methods with return value specified for ID %s. (%s.%s)"
)

// Validator checks a single target in isolation. Checks that depend on
// other bindings of the same class run while binding, see Processor.
type Validator struct {
	universe *typesys.Universe
}

// NewValidator creates a validator over the round's type universe
func NewValidator(universe *typesys.Universe) *Validator {
	return &Validator{universe: universe}
}

// Validate returns every failing check for the target, in priority order.
// A target is only bound when the result is empty.
func (v *Validator) Validate(t Target) []*errors.BaseError {
	element := t.Element
	kind := t.Kind()

	wantKind := models.FieldElement
	if kind.IsListener() {
		wantKind = models.MethodElement
	}
	if element.Kind != wantKind {
		return []*errors.BaseError{v.fail(errors.StructuralErrorCode, element, MsgWrongElement,
			kind, plural(wantKind), element.Enclosing.QualifiedName, element.Name)}
	}

	errs := v.checkAccess(t)
	if kind.IsListener() {
		errs = append(errs, v.checkMethod(t)...)
	} else {
		errs = append(errs, v.checkField(t)...)
	}
	return errs
}

// checkAccess verifies that generated code in the same package can reach
// the member
func (v *Validator) checkAccess(t Target) []*errors.BaseError {
	var errs []*errors.BaseError
	element, owner := t.Element, t.Element.Enclosing
	kind, what := t.Kind(), plural(t.Element.Kind)

	if owner.Kind != models.ClassKind {
		errs = append(errs, errors.Newf(errors.StructuralErrorCode, MsgNotInClass,
			kind, what, owner.QualifiedName, element.Name).
			WithLocation(owner.Loc).
			WithSuggestion(fmt.Sprintf("Move %s into a class; %ss cannot be injected", element.Name, owner.Kind)))
	}
	if owner.IsPrivate() {
		errs = append(errs, v.fail(errors.ModifierErrorCode, element, MsgInPrivateClass,
			kind, what, owner.QualifiedName, element.Name))
	}
	if owner.InFrameworkPackage() {
		errs = append(errs, errors.Newf(errors.StructuralErrorCode, MsgFrameworkPackage,
			kind, owner.QualifiedName).WithLocation(element.Loc))
	}
	if element.Modifiers.Has(models.Private) || element.Modifiers.Has(models.Static) {
		errs = append(errs, v.fail(errors.ModifierErrorCode, element, MsgPrivateOrStatic,
			kind, what, owner.QualifiedName, element.Name).
			WithSuggestion("Use package-private, protected or public instance members"))
	}
	return errs
}

func (v *Validator) checkMethod(t Target) []*errors.BaseError {
	var errs []*errors.BaseError
	element, owner := t.Element, t.Element.Enclosing.QualifiedName
	kind := t.Kind()
	spec, _ := annotations.Listener(kind)

	if element.Type.String() != spec.ReturnType {
		errs = append(errs, v.fail(errors.SignatureErrorCode, element, MsgReturnType,
			kind, spec.ReturnType, owner, element.Name))
	}
	if len(element.Parameters) > spec.MaxParameters() {
		errs = append(errs, v.fail(errors.SignatureErrorCode, element, MsgTooManyParameters,
			kind, spec.MaxParameters(), owner, element.Name))
	}
	if len(t.Annotation.IDs) == 0 {
		errs = append(errs, v.fail(errors.DataErrorCode, element, MsgNoIDs, kind, owner, element.Name))
	}
	if dup, ok := findDuplicate(t.Annotation.IDs); ok {
		errs = append(errs, v.fail(errors.DataErrorCode, element, MsgDuplicateID,
			kind, dup, owner, element.Name))
	}
	return errs
}

func (v *Validator) checkField(t Target) []*errors.BaseError {
	var errs []*errors.BaseError
	element, owner := t.Element, t.Element.Enclosing.QualifiedName
	kind := t.Kind()

	switch len(t.Annotation.IDs) {
	case 0:
		errs = append(errs, v.fail(errors.DataErrorCode, element, MsgNoIDs, kind, owner, element.Name))
	case 1:
	default:
		errs = append(errs, v.fail(errors.DataErrorCode, element, MsgSingleID, kind, owner, element.Name))
	}

	view := typesys.Named(typesys.ViewType)
	if !v.universe.IsSubtype(element.Type, view) && !v.universe.IsInterface(element.Type) {
		errs = append(errs, v.fail(errors.SignatureErrorCode, element, MsgFieldType, kind, owner, element.Name).
			WithContext("type", element.Type.String()))
	}
	return errs
}

func (v *Validator) fail(code errors.ErrorCode, element *models.Element, format string, args ...interface{}) *errors.BaseError {
	return errors.Newf(code, format, args...).WithLocation(element.Loc)
}

// findDuplicate returns the first ID that occurs more than once
func findDuplicate(ids []string) (string, bool) {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return id, true
		}
		seen[id] = true
	}
	return "", false
}

func plural(kind models.ElementKind) string {
	return kind.String() + "s"
}
