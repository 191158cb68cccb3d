package annotations

import (
	"fmt"
	"strings"
)

// Package is the Java package that declares every supported annotation
const Package = "butterknife"

// Kind represents one of the supported annotation kinds
type Kind int

const (
	UnknownKind Kind = iota
	InjectView
	Optional
	OnClick
	OnLongClick
	OnItemClick
	OnItemLongClick
	OnCheckedChanged
	OnEditorAction
	OnFocusChange
	OnTouch
)

var kindNames = map[Kind]string{
	InjectView:       "InjectView",
	Optional:         "Optional",
	OnClick:          "OnClick",
	OnLongClick:      "OnLongClick",
	OnItemClick:      "OnItemClick",
	OnItemLongClick:  "OnItemLongClick",
	OnCheckedChanged: "OnCheckedChanged",
	OnEditorAction:   "OnEditorAction",
	OnFocusChange:    "OnFocusChange",
	OnTouch:          "OnTouch",
}

// String returns the simple annotation name, e.g. "OnClick"
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// QualifiedName returns the fully qualified annotation name
func (k Kind) QualifiedName() string {
	return Package + "." + k.String()
}

// IsListener reports whether the kind binds a method to a listener callback
func (k Kind) IsListener() bool {
	_, ok := listenerSpecs[k]
	return ok
}

// ParseKind converts a simple or qualified annotation name to a Kind
func ParseKind(name string) (Kind, error) {
	simple := strings.TrimPrefix(name, Package+".")
	if strings.Contains(simple, ".") {
		return UnknownKind, fmt.Errorf("unknown annotation type: %s", name)
	}
	for kind, kindName := range kindNames {
		if kindName == simple {
			return kind, nil
		}
	}
	return UnknownKind, fmt.Errorf("unknown annotation type: %s", name)
}

// BindingKinds returns the kinds that create bindings, in collection order.
// Field injections come first so that a listener on the same ID always
// follows the field lookup.
func BindingKinds() []Kind {
	kinds := []Kind{InjectView}
	return append(kinds, ListenerKinds()...)
}
