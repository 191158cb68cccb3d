package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Kind
		wantErr  bool
	}{
		{name: "simple name", input: "OnClick", expected: OnClick},
		{name: "qualified name", input: "butterknife.InjectView", expected: InjectView},
		{name: "optional", input: "Optional", expected: Optional},
		{name: "foreign package", input: "com.example.OnClick", wantErr: true},
		{name: "unknown", input: "Override", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, UnknownKind, kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "OnLongClick", OnLongClick.String())
	assert.Equal(t, "butterknife.OnClick", OnClick.QualifiedName())
	assert.Equal(t, "unknown", UnknownKind.String())
}

func TestBindingKindsOrder(t *testing.T) {
	kinds := BindingKinds()
	require.NotEmpty(t, kinds)
	assert.Equal(t, InjectView, kinds[0])
	assert.Equal(t, OnClick, kinds[1])
	assert.NotContains(t, kinds, Optional)
}

func TestListenerCatalogue(t *testing.T) {
	for _, kind := range ListenerKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			spec, ok := Listener(kind)
			require.True(t, ok)
			assert.Equal(t, kind, spec.Kind)
			assert.NotEmpty(t, spec.Setter)
			assert.NotEmpty(t, spec.Method)
			assert.NotEmpty(t, spec.Parameters)
			assert.Equal(t, spec.ReturnsValue(), spec.DefaultValue != "")
			assert.True(t, kind.IsListener())
		})
	}

	_, ok := Listener(InjectView)
	assert.False(t, ok)
	assert.False(t, Optional.IsListener())
}

func TestOnClickSignature(t *testing.T) {
	spec, ok := Listener(OnClick)
	require.True(t, ok)
	assert.Equal(t, 1, spec.MaxParameters())
	assert.Equal(t, []string{"android.view.View"}, spec.Parameters)
	assert.Equal(t, "void", spec.ReturnType)
	assert.False(t, spec.ReturnsValue())
}

func TestListenerKindsIsCopy(t *testing.T) {
	kinds := ListenerKinds()
	kinds[0] = InjectView
	assert.Equal(t, OnClick, ListenerKinds()[0])
}
