package annotations

// ListenerSpec describes how one listener annotation is wired at runtime.
// Parameters is the catalogue of callback parameter types, searched top to
// bottom when matching an annotated method.
type ListenerSpec struct {
	Kind         Kind
	TargetType   string   // type that declares the setter
	Setter       string   // e.g. setOnClickListener
	Type         string   // listener interface
	Method       string   // callback method on the listener
	Parameters   []string // callback parameters, in declaration order
	ReturnType   string
	DefaultValue string // returned when no method is bound, empty for void
}

// MaxParameters is the most parameters an annotated method may declare
func (s ListenerSpec) MaxParameters() int {
	return len(s.Parameters)
}

// ReturnsValue reports whether the callback returns something other than void
func (s ListenerSpec) ReturnsValue() bool {
	return s.ReturnType != "void"
}

const (
	viewType        = "android.view.View"
	adapterViewType = "android.widget.AdapterView<?>"
)

var listenerOrder = []Kind{
	OnClick,
	OnLongClick,
	OnItemClick,
	OnItemLongClick,
	OnCheckedChanged,
	OnEditorAction,
	OnFocusChange,
	OnTouch,
}

var listenerSpecs = map[Kind]ListenerSpec{
	OnClick: {
		Kind:       OnClick,
		TargetType: viewType,
		Setter:     "setOnClickListener",
		Type:       "android.view.View.OnClickListener",
		Method:     "onClick",
		Parameters: []string{viewType},
		ReturnType: "void",
	},
	OnLongClick: {
		Kind:         OnLongClick,
		TargetType:   viewType,
		Setter:       "setOnLongClickListener",
		Type:         "android.view.View.OnLongClickListener",
		Method:       "onLongClick",
		Parameters:   []string{viewType},
		ReturnType:   "boolean",
		DefaultValue: "false",
	},
	OnItemClick: {
		Kind:       OnItemClick,
		TargetType: adapterViewType,
		Setter:     "setOnItemClickListener",
		Type:       "android.widget.AdapterView.OnItemClickListener",
		Method:     "onItemClick",
		Parameters: []string{adapterViewType, viewType, "int", "long"},
		ReturnType: "void",
	},
	OnItemLongClick: {
		Kind:         OnItemLongClick,
		TargetType:   adapterViewType,
		Setter:       "setOnItemLongClickListener",
		Type:         "android.widget.AdapterView.OnItemLongClickListener",
		Method:       "onItemLongClick",
		Parameters:   []string{adapterViewType, viewType, "int", "long"},
		ReturnType:   "boolean",
		DefaultValue: "false",
	},
	OnCheckedChanged: {
		Kind:       OnCheckedChanged,
		TargetType: "android.widget.CompoundButton",
		Setter:     "setOnCheckedChangeListener",
		Type:       "android.widget.CompoundButton.OnCheckedChangeListener",
		Method:     "onCheckedChanged",
		Parameters: []string{"android.widget.CompoundButton", "boolean"},
		ReturnType: "void",
	},
	OnEditorAction: {
		Kind:         OnEditorAction,
		TargetType:   "android.widget.TextView",
		Setter:       "setOnEditorActionListener",
		Type:         "android.widget.TextView.OnEditorActionListener",
		Method:       "onEditorAction",
		Parameters:   []string{"android.widget.TextView", "int", "android.view.KeyEvent"},
		ReturnType:   "boolean",
		DefaultValue: "false",
	},
	OnFocusChange: {
		Kind:       OnFocusChange,
		TargetType: viewType,
		Setter:     "setOnFocusChangeListener",
		Type:       "android.view.View.OnFocusChangeListener",
		Method:     "onFocusChange",
		Parameters: []string{viewType, "boolean"},
		ReturnType: "void",
	},
	OnTouch: {
		Kind:         OnTouch,
		TargetType:   viewType,
		Setter:       "setOnTouchListener",
		Type:         "android.view.View.OnTouchListener",
		Method:       "onTouch",
		Parameters:   []string{viewType, "android.view.MotionEvent"},
		ReturnType:   "boolean",
		DefaultValue: "false",
	},
}

// Listener returns the catalogue entry for a listener kind
func Listener(kind Kind) (ListenerSpec, bool) {
	spec, ok := listenerSpecs[kind]
	return spec, ok
}

// ListenerKinds returns every listener kind in catalogue order
func ListenerKinds() []Kind {
	kinds := make([]Kind, len(listenerOrder))
	copy(kinds, listenerOrder)
	return kinds
}
