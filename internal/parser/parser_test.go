package parser

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/viewinject/internal/annotations"
	"github.com/toyz/viewinject/internal/errors"
	"github.com/toyz/viewinject/internal/models"
	"github.com/toyz/viewinject/internal/typesys"
)

func lowerSources(t *testing.T, sources map[string]string) ([]*models.CompilationUnit, *typesys.Universe, error) {
	t.Helper()
	p := NewParser()
	var files []*SourceFile
	for _, name := range sortedKeys(sources) {
		f, err := p.ParseSource(name, sources[name])
		require.NoError(t, err)
		files = append(files, f)
	}
	u := typesys.NewUniverse()
	units, err := Lower(files, u)
	return units, u, err
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestParseBasicClass(t *testing.T) {
	source := `package test;
import android.app.Activity;
import android.view.View;
import android.widget.TextView;
import butterknife.InjectView;
import butterknife.OnClick;
import butterknife.Optional;

/** A screen. */
public class Test extends Activity {
  @InjectView(1) TextView title;
  @Optional @InjectView(R.id.subtitle) View subtitle, other;
  private static final int COUNT = compute(1, new int[] {2, 3});

  static {
    System.out.println("{ not a brace }");
  }

  public Test() {
    super();
  }

  @OnClick({1, 0x2, 3_0}) void doStuff(View view) {
    if (view != null) { view.setEnabled(false); }
  }

  @Override protected void onCreate(android.os.Bundle state) {}
}
`
	units, u, err := lowerSources(t, map[string]string{"test/Test.java": source})
	require.NoError(t, err)
	require.Len(t, units, 1)

	unit := units[0]
	assert.Equal(t, "test", unit.Package)
	require.Len(t, unit.Types, 1)

	typ := unit.Types[0]
	assert.Equal(t, "test.Test", typ.QualifiedName)
	assert.Equal(t, "Test", typ.BinaryName())
	assert.Equal(t, models.ClassKind, typ.Kind)
	assert.True(t, typ.Modifiers.Has(models.Public))
	assert.Equal(t, "android.app.Activity", typ.Superclass.String())
	assert.Equal(t, 10, typ.Loc.Line)
	assert.True(t, u.Has("test.Test"))

	byName := map[string]*models.Element{}
	for _, m := range typ.Members {
		byName[m.Name] = m
	}

	title := byName["title"]
	require.NotNil(t, title)
	assert.Equal(t, models.FieldElement, title.Kind)
	assert.Equal(t, "android.widget.TextView", title.Type.String())
	a, ok := title.Annotation(annotations.InjectView)
	require.True(t, ok)
	assert.Equal(t, []string{"1"}, a.IDs)
	assert.Equal(t, errors.SourceLocation{File: "test/Test.java", Line: 11, Column: 27}, title.Loc)

	for _, name := range []string{"subtitle", "other"} {
		field := byName[name]
		require.NotNil(t, field, name)
		assert.True(t, field.HasAnnotation(annotations.Optional))
		a, ok := field.Annotation(annotations.InjectView)
		require.True(t, ok)
		assert.Equal(t, []string{"R.id.subtitle"}, a.IDs)
	}

	count := byName["COUNT"]
	require.NotNil(t, count)
	assert.True(t, count.Modifiers.Has(models.Private|models.Static|models.Final))
	assert.Equal(t, "int", count.Type.String())

	ctor := byName["<init>"]
	require.NotNil(t, ctor)
	assert.Equal(t, models.ConstructorElement, ctor.Kind)

	doStuff := byName["doStuff"]
	require.NotNil(t, doStuff)
	assert.Equal(t, models.MethodElement, doStuff.Kind)
	assert.Equal(t, "void", doStuff.Type.String())
	require.Len(t, doStuff.Parameters, 1)
	assert.Equal(t, "android.view.View", doStuff.Parameters[0].Type.String())
	click, ok := doStuff.Annotation(annotations.OnClick)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2", "30"}, click.IDs)
	assert.Equal(t, 23, doStuff.Loc.Line)

	onCreate := byName["onCreate"]
	require.NotNil(t, onCreate)
	assert.Empty(t, onCreate.Annotations)
	assert.Equal(t, "android.os.Bundle", onCreate.Parameters[0].Type.String())
}

func TestParseAnnotationForms(t *testing.T) {
	source := `package test;
import butterknife.*;
class Test {
  @butterknife.OnLongClick(value = 7) boolean a() { return true; }
  @OnTouch(value = {1, 2}) boolean b(android.view.View v, android.view.MotionEvent e) { return false; }
  @OnClick() void c() {}
  @com.example.OnClick(3) void d() {}
  @OnFocusChange(-1) void e(View v, boolean focused) {}
}
`
	units, _, err := lowerSources(t, map[string]string{"Test.java": source})
	require.NoError(t, err)

	members := units[0].Types[0].Members
	require.Len(t, members, 5)

	a, ok := members[0].Annotation(annotations.OnLongClick)
	require.True(t, ok)
	assert.Equal(t, []string{"7"}, a.IDs)
	assert.Equal(t, "boolean", members[0].Type.String())

	b, ok := members[1].Annotation(annotations.OnTouch)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, b.IDs)

	c, ok := members[2].Annotation(annotations.OnClick)
	require.True(t, ok)
	assert.Empty(t, c.IDs)

	assert.Empty(t, members[3].Annotations, "annotations outside the binding package are ignored")

	e, ok := members[4].Annotation(annotations.OnFocusChange)
	require.True(t, ok)
	assert.Equal(t, []string{"-1"}, e.IDs)
}

func TestParseNestedAndInterfaces(t *testing.T) {
	source := `package test;
import android.view.View;
public class Outer {
  private static class Inner<T extends View> extends Base implements Runnable {
    T value;
    public void run() {}
  }
  interface Callback {
    View VIEW = null;
    void call(View... views);
    default int size() { return 0; }
  }
  enum Mode { ONE, TWO(2) { }, ; Mode() {} Mode(int x) {} }
}
`
	base := `package test;
public class Base {}
`
	units, u, err := lowerSources(t, map[string]string{"test/Outer.java": source, "test/Base.java": base})
	require.NoError(t, err)
	require.Len(t, units, 2)

	outer := units[1].Types[0]
	require.Len(t, outer.Nested, 3)

	inner := outer.Nested[0]
	assert.Equal(t, "test.Outer.Inner", inner.QualifiedName)
	assert.Equal(t, "Outer$Inner", inner.BinaryName())
	assert.True(t, inner.IsPrivate())
	assert.Equal(t, "test.Base", inner.Superclass.String())
	require.Len(t, inner.Interfaces, 1)
	assert.Equal(t, "java.lang.Runnable", inner.Interfaces[0].String())
	assert.Equal(t, "T", inner.Members[0].Type.String())
	assert.True(t, u.IsSubtype(typesys.Named("test.Outer.Inner"), typesys.Named("test.Base")))

	callback := outer.Nested[1]
	assert.Equal(t, models.InterfaceKind, callback.Kind)
	assert.True(t, u.IsInterface(typesys.Named("test.Outer.Callback")))
	require.Len(t, callback.Members, 3)
	assert.True(t, callback.Members[0].Modifiers.Has(models.Public|models.Static|models.Final))
	assert.True(t, callback.Members[1].Modifiers.Has(models.Public|models.Abstract))
	assert.Equal(t, "android.view.View[]", callback.Members[1].Parameters[0].Type.String())
	assert.False(t, callback.Members[2].Modifiers.Has(models.Abstract))

	mode := outer.Nested[2]
	assert.Equal(t, models.EnumKind, mode.Kind)
	assert.Len(t, mode.Members, 2)
}

func TestParseGenerics(t *testing.T) {
	source := `package test;
import android.widget.AdapterView;
import java.util.Map;
class Test {
  Map<String, AdapterView<?>> views;
  <T> void each(AdapterView<? extends android.widget.ListAdapter> parent, int[] positions[]) {}
}
`
	units, _, err := lowerSources(t, map[string]string{"Test.java": source})
	require.NoError(t, err)

	members := units[0].Types[0].Members
	assert.Equal(t, "java.util.Map<java.lang.String,android.widget.AdapterView<?>>", members[0].Type.String())
	params := members[1].Parameters
	assert.Equal(t, "android.widget.AdapterView<? extends android.widget.ListAdapter>", params[0].Type.String())
	assert.Equal(t, "int[][]", params[1].Type.String())
}

func TestParseSyntaxError(t *testing.T) {
	_, err := NewParser().ParseSource("Broken.java", "package test;\nclass Broken {\n  void x( {\n}\n")
	require.Error(t, err)

	var coded errors.CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, errors.SyntaxErrorCode, coded.ErrorCode())
	assert.Equal(t, "Broken.java", coded.Location().File)
	assert.Equal(t, 3, coded.Location().Line)
}

func TestLowerDuplicateClass(t *testing.T) {
	_, _, err := lowerSources(t, map[string]string{
		"a/Test.java": "package test; class Test {}",
		"b/Test.java": "package test; class Test {}",
	})
	require.Error(t, err)

	var multi *errors.MultipleErrors
	require.ErrorAs(t, err, &multi)
	require.NotEmpty(t, multi.Errors)
	assert.Equal(t, errors.StructuralErrorCode, multi.Errors[0].ErrorCode())
	assert.Contains(t, err.Error(), "duplicate class: test.Test")
}

func TestLowerRejectsAnnotationValuedIDs(t *testing.T) {
	_, _, err := lowerSources(t, map[string]string{
		"Test.java": "package test; import butterknife.OnClick; class Test { @OnClick(@Deprecated) void a() {} }",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constant expression")
}

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1", "1"},
		{"0x7f0a0001", "2131361793"},
		{"1_000", "1000"},
		{"10L", "10"},
		{"-1", "-1"},
		{"R.id.title", "R.id.title"},
		{"android.R.id.list", "android.R.id.list"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalID(tt.input))
		})
	}
}
