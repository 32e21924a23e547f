package mirror

import (
	"reflect"
	"testing"

	"github.com/iagainey/mirror/lookup"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil descriptor yields empty member", func(t *testing.T) {
		m := New[widget, string](nil)
		if !m.IsEmpty() {
			t.Fatalf("expected empty member, got %s", m)
		}
	})

	t.Run("descriptor stored verbatim", func(t *testing.T) {
		sf, _ := reflect.TypeOf(widget{}).FieldByName("Label")
		d := Field{Owner: reflect.TypeOf(widget{}), StructField: sf}
		m := New[widget, string](d)
		if !m.IsField() {
			t.Fatalf("expected field member, got %s", m.Kind())
		}
		if !m.EqualDescriptor(d) {
			t.Fatalf("descriptor not stored verbatim")
		}
	})
}

func TestFirstOf(t *testing.T) {
	t.Parallel()

	wt := reflect.TypeOf(widget{})
	label, _ := wt.FieldByName("Label")
	count, _ := wt.FieldByName("Count")
	fieldLabel := Field{Owner: wt, StructField: label}
	fieldCount := Field{Owner: wt, StructField: count}

	cases := []struct {
		name  string
		descs []Descriptor
		want  Descriptor // nil means empty
	}{
		{"all nil -> empty", []Descriptor{nil, nil, nil}, nil},
		{"no candidates -> empty", nil, nil},
		{"first non-nil wins", []Descriptor{nil, fieldLabel, fieldCount}, fieldLabel},
		{"order dependent", []Descriptor{fieldCount, fieldLabel}, fieldCount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := FirstOf[widget, any](tc.descs...)
			if tc.want == nil {
				if !m.IsEmpty() {
					t.Fatalf("expected empty, got %s", m)
				}
				return
			}
			if !m.EqualDescriptor(tc.want) {
				t.Fatalf("got %s, want %v", m, tc.want)
			}
			// First-match law: the sequence result equals wrapping the first
			// non-nil candidate alone.
			if first := New[widget, any](tc.want); !m.Equal(first) {
				t.Fatalf("sequence result differs from first non-nil alone")
			}
		})
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	t.Run("getter method preferred over field", func(t *testing.T) {
		// record has both a Value field and a GetValue method; the 2-arg form
		// tries accessor methods first.
		m := ByName[record, string]("value")
		if !m.IsMethod() {
			t.Fatalf("expected method, got %s", m)
		}
		if m.Name() != "GetValue" {
			t.Fatalf("got %q, want GetValue", m.Name())
		}
	})

	t.Run("bare method name preferred over prefixed", func(t *testing.T) {
		m := ByName[widget, bool]("ready")
		if m.Name() != "Ready" {
			t.Fatalf("got %q, want Ready", m.Name())
		}
	})

	t.Run("is-prefixed accessor resolves when bare is absent", func(t *testing.T) {
		m := ByName[probe, bool]("ready")
		if m.Name() != "IsReady" {
			t.Fatalf("got %q, want IsReady", m.Name())
		}
	})

	t.Run("field resolves when no accessor exists", func(t *testing.T) {
		m := ByName[widget, string]("label")
		if !m.IsField() {
			t.Fatalf("expected field, got %s", m)
		}
		if m.Name() != "Label" {
			t.Fatalf("got %q, want Label", m.Name())
		}
	})

	t.Run("unexported field matches its exact name", func(t *testing.T) {
		m := ByName[widget, string]("note")
		if !m.IsField() || m.IsExported() {
			t.Fatalf("expected unexported field, got %s", m)
		}
	})

	t.Run("unknown name yields empty", func(t *testing.T) {
		m := ByName[widget, string]("nonesuch")
		if !m.IsEmpty() {
			t.Fatalf("expected empty, got %s", m)
		}
	})

	t.Run("tag key matches serialized field name", func(t *testing.T) {
		// The db tag is "label_col,primary"; matching cuts at the comma.
		m := ByName[widget, string]("label_col", WithTagKey("db"))
		if !m.IsField() || m.Name() != "Label" {
			t.Fatalf("expected Label field, got %s", m)
		}
	})
}

func TestByProperty(t *testing.T) {
	t.Parallel()

	t.Run("setter method wins", func(t *testing.T) {
		m := ByProperty[*widget, int]("count")
		if !m.IsMethod() || m.Name() != "SetCount" {
			t.Fatalf("expected SetCount, got %s", m)
		}
	})

	t.Run("fluent setter wins over field", func(t *testing.T) {
		m := ByProperty[*widget, string]("label")
		if !m.IsMethod() || m.Name() != "SetLabel" {
			t.Fatalf("expected SetLabel, got %s", m)
		}
	})

	t.Run("setter with mismatched value type is skipped", func(t *testing.T) {
		// SetCount accepts int; with a string value the field lookup runs
		// next and misses, then the getter lookup misses too.
		m := ByProperty[*widget, string]("count")
		if !m.IsField() || m.Name() != "Count" {
			t.Fatalf("expected Count field, got %s", m)
		}
	})

	t.Run("field preferred over getter", func(t *testing.T) {
		m := ByProperty[record, string]("value")
		if !m.IsField() || m.Name() != "Value" {
			t.Fatalf("expected Value field, got %s", m)
		}
	})

	t.Run("getter resolves when setter and field are absent", func(t *testing.T) {
		m := ByProperty[probe, bool]("ready")
		if !m.IsMethod() || m.Name() != "IsReady" {
			t.Fatalf("expected IsReady, got %s", m)
		}
	})

	t.Run("conversion constructor is the last resort", func(t *testing.T) {
		m := ByProperty[int, temperature]("reading")
		if !m.IsConstructor() {
			t.Fatalf("expected constructor, got %s", m)
		}
		if got, ok := m.Get(21); !ok || got != temperature(21) {
			t.Fatalf("Get = %v, %v", got, ok)
		}
	})

	t.Run("nothing matches yields empty", func(t *testing.T) {
		m := ByProperty[widget, temperature]("nonesuch")
		if !m.IsEmpty() {
			t.Fatalf("expected empty, got %s", m)
		}
	})
}

func TestForConstructor(t *testing.T) {
	t.Parallel()

	t.Run("parameter constructor when convertible", func(t *testing.T) {
		m := ForConstructor[int, temperature]()
		c, ok := m.Constructor()
		if !ok {
			t.Fatalf("expected constructor, got %s", m)
		}
		if c.ParamType() != reflect.TypeOf(0) {
			t.Fatalf("param = %v, want int", c.ParamType())
		}
	})

	t.Run("zero-argument fallback", func(t *testing.T) {
		m := ForConstructor[string, widget]()
		c, ok := m.Constructor()
		if !ok || c.NumIn() != 0 {
			t.Fatalf("expected zero-argument constructor, got %s", m)
		}
	})
}

func TestWithConvention(t *testing.T) {
	t.Parallel()

	t.Run("snake_case logical names via normalizer", func(t *testing.T) {
		conv := lookup.DefaultConvention()
		conv.Normalize = lookup.UpperCamel
		m := ByProperty[*widget, int]("set_count", WithConvention(conv))
		// "set_count" normalizes to "SetCount" through the capitalized-bare
		// candidate before any prefixing.
		if m.Name() != "SetCount" {
			t.Fatalf("got %s, want SetCount", m)
		}
	})
}
