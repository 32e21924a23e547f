package mirror

import (
	"reflect"

	"github.com/iagainey/mirror/lookup"
)

// New wraps a single descriptor verbatim; a nil descriptor yields an empty
// member.
func New[C any, V any](d Descriptor, options ...Option) *Member[C, V] {
	return &Member[C, V]{desc: d, opts: applyOptions(options)}
}

// FirstOf stores the first non-nil descriptor, in argument order; if all are
// nil the member is empty.
func FirstOf[C any, V any](descs ...Descriptor) *Member[C, V] {
	for _, d := range descs {
		if d != nil {
			return &Member[C, V]{desc: d, opts: defaultSettings()}
		}
	}
	return &Member[C, V]{opts: defaultSettings()}
}

// ByName resolves a read accessor for the logical property name on C: a
// getter-shaped method first, then a field. The member is empty when neither
// exists.
func ByName[C any, V any](name string, options ...Option) *Member[C, V] {
	s := applyOptions(options)
	t := typeFor[C]()
	d := firstPresent(
		func() (Descriptor, bool) { return getterDescriptor(t, name, s) },
		func() (Descriptor, bool) { return fieldDescriptor(t, name, s) },
	)
	return &Member[C, V]{desc: d, opts: s}
}

// ByProperty resolves the best access target for a logical property with
// value type V on C, in priority order: a setter-shaped method accepting V, a
// field, a getter-shaped method, then a one-parameter constructor on V
// accepting C.
func ByProperty[C any, V any](name string, options ...Option) *Member[C, V] {
	s := applyOptions(options)
	t := typeFor[C]()
	vt := typeFor[V]()
	d := firstPresent(
		func() (Descriptor, bool) { return setterDescriptor(t, name, vt, s) },
		func() (Descriptor, bool) { return fieldDescriptor(t, name, s) },
		func() (Descriptor, bool) { return getterDescriptor(t, name, s) },
		func() (Descriptor, bool) {
			c, ok := ConversionConstructor(vt, t)
			return c, ok
		},
	)
	return &Member[C, V]{desc: d, opts: s}
}

// ForConstructor resolves the constructor on V accepting exactly C, falling
// back to V's zero-argument constructor.
func ForConstructor[C any, V any](options ...Option) *Member[C, V] {
	s := applyOptions(options)
	m := &Member[C, V]{opts: s}
	if c, ok := ConstructorFor(typeFor[V](), typeFor[C]()); ok {
		m.desc = c
	}
	return m
}

// typeFor returns the reflect.Type of T without requiring a value of it.
func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// firstPresent tries candidate producers in order and keeps the first present
// descriptor. Resolution is speculative; absence is never an error.
func firstPresent(candidates ...func() (Descriptor, bool)) Descriptor {
	for _, candidate := range candidates {
		if d, ok := candidate(); ok {
			return d
		}
	}
	return nil
}

func getterDescriptor(t reflect.Type, name string, s settings) (Descriptor, bool) {
	m, ok := s.conv.Getter(t, name)
	if !ok {
		return nil, false
	}
	return Method{Owner: methodOwner(t, m), Method: m}, true
}

func setterDescriptor(t reflect.Type, name string, param reflect.Type, s settings) (Descriptor, bool) {
	m, ok := s.conv.Setter(t, name, param)
	if !ok {
		return nil, false
	}
	return Method{Owner: methodOwner(t, m), Method: m}, true
}

func fieldDescriptor(t reflect.Type, name string, s settings) (Descriptor, bool) {
	st := derefStruct(t)
	if st == nil {
		return nil, false
	}
	for _, candidate := range s.conv.FieldNames(name) {
		if sf, ok := lookup.FieldByName(st, candidate); ok {
			return Field{Owner: st, StructField: sf}, true
		}
	}
	if s.tagKey != "" {
		if sf, ok := lookup.TaggedField(st, s.tagKey, name); ok {
			return Field{Owner: st, StructField: sf}, true
		}
	}
	return nil, false
}

func methodOwner(t reflect.Type, m reflect.Method) reflect.Type {
	if m.Func.IsValid() {
		return m.Func.Type().In(0)
	}
	return t
}

func derefStruct(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}
