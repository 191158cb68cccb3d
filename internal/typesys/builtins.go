package typesys

// builtinTypes is the slice of the platform hierarchy the generator needs to
// answer assignability questions. Config files may extend it.
var builtinTypes = []TypeInfo{
	{Name: ObjectType},
	{Name: "java.lang.String", Super: ObjectType, Interfaces: []string{"java.lang.CharSequence"}},
	{Name: "java.lang.CharSequence", Interface: true},
	{Name: "java.lang.Runnable", Interface: true},
	{Name: "java.lang.Integer", Super: "java.lang.Number"},
	{Name: "java.lang.Long", Super: "java.lang.Number"},
	{Name: "java.lang.Boolean", Super: ObjectType},
	{Name: "java.lang.Enum", Super: ObjectType},
	{Name: "java.lang.Number", Super: ObjectType},

	{Name: "android.content.Context", Super: ObjectType},
	{Name: "android.content.ContextWrapper", Super: "android.content.Context"},
	{Name: "android.view.ContextThemeWrapper", Super: "android.content.ContextWrapper"},
	{Name: "android.app.Activity", Super: "android.view.ContextThemeWrapper"},
	{Name: "android.app.Dialog", Super: ObjectType},
	{Name: "android.app.Fragment", Super: ObjectType},

	{Name: "android.graphics.drawable.Drawable.Callback", Interface: true},
	{Name: "android.view.KeyEvent.Callback", Interface: true},
	{Name: "android.view.ViewParent", Interface: true},
	{Name: "android.view.ViewManager", Interface: true},
	{Name: "android.widget.Checkable", Interface: true},
	{Name: "android.widget.Adapter", Interface: true},
	{Name: "android.widget.ListAdapter", Interface: true, Interfaces: []string{"android.widget.Adapter"}},

	{Name: "android.view.KeyEvent", Super: ObjectType},
	{Name: "android.view.MotionEvent", Super: ObjectType},
	{Name: ViewType, Super: ObjectType, Interfaces: []string{
		"android.graphics.drawable.Drawable.Callback",
		"android.view.KeyEvent.Callback",
	}},
	{Name: "android.view.ViewGroup", Super: ViewType, Interfaces: []string{
		"android.view.ViewParent",
		"android.view.ViewManager",
	}},
	{Name: "android.view.SurfaceView", Super: ViewType},
	{Name: "android.view.TextureView", Super: ViewType},

	{Name: "android.widget.TextView", Super: ViewType},
	{Name: "android.widget.EditText", Super: "android.widget.TextView"},
	{Name: "android.widget.AutoCompleteTextView", Super: "android.widget.EditText"},
	{Name: "android.widget.Button", Super: "android.widget.TextView"},
	{Name: "android.widget.CompoundButton", Super: "android.widget.Button", Interfaces: []string{"android.widget.Checkable"}},
	{Name: "android.widget.CheckBox", Super: "android.widget.CompoundButton"},
	{Name: "android.widget.RadioButton", Super: "android.widget.CompoundButton"},
	{Name: "android.widget.Switch", Super: "android.widget.CompoundButton"},
	{Name: "android.widget.ToggleButton", Super: "android.widget.CompoundButton"},
	{Name: "android.widget.CheckedTextView", Super: "android.widget.TextView", Interfaces: []string{"android.widget.Checkable"}},
	{Name: "android.widget.ImageView", Super: ViewType},
	{Name: "android.widget.ImageButton", Super: "android.widget.ImageView"},
	{Name: "android.widget.ProgressBar", Super: ViewType},
	{Name: "android.widget.AbsSeekBar", Super: "android.widget.ProgressBar"},
	{Name: "android.widget.SeekBar", Super: "android.widget.AbsSeekBar"},
	{Name: "android.widget.RatingBar", Super: "android.widget.AbsSeekBar"},

	{Name: "android.widget.FrameLayout", Super: "android.view.ViewGroup"},
	{Name: "android.widget.LinearLayout", Super: "android.view.ViewGroup"},
	{Name: "android.widget.RelativeLayout", Super: "android.view.ViewGroup"},
	{Name: "android.widget.ScrollView", Super: "android.widget.FrameLayout"},
	{Name: "android.widget.AdapterView", Super: "android.view.ViewGroup"},
	{Name: "android.widget.AbsListView", Super: "android.widget.AdapterView"},
	{Name: "android.widget.ListView", Super: "android.widget.AbsListView"},
	{Name: "android.widget.GridView", Super: "android.widget.AbsListView"},
	{Name: "android.widget.AbsSpinner", Super: "android.widget.AdapterView"},
	{Name: "android.widget.Spinner", Super: "android.widget.AbsSpinner"},

	{Name: "butterknife.ButterKnife", Super: ObjectType},
	{Name: "butterknife.ButterKnife.Finder", Super: "java.lang.Enum"},
	{Name: "butterknife.InjectView", Interface: true},
	{Name: "butterknife.Optional", Interface: true},
	{Name: "butterknife.OnClick", Interface: true},
	{Name: "butterknife.OnLongClick", Interface: true},
	{Name: "butterknife.OnItemClick", Interface: true},
	{Name: "butterknife.OnItemLongClick", Interface: true},
	{Name: "butterknife.OnCheckedChanged", Interface: true},
	{Name: "butterknife.OnEditorAction", Interface: true},
	{Name: "butterknife.OnFocusChange", Interface: true},
	{Name: "butterknife.OnTouch", Interface: true},
}
