package lookup

import (
	"reflect"
	"strings"
)

// FieldByName finds the field with exactly the given name on t, unwrapping
// pointer types first. Embedded fields are promoted per Go's visibility
// rules; unexported fields are found as well, since Go encodes visibility in
// the name itself and exported/unexported names can never collide.
func FieldByName(t reflect.Type, name string) (reflect.StructField, bool) {
	st := structType(t)
	if st == nil || name == "" {
		return reflect.StructField{}, false
	}
	return st.FieldByName(name)
}

// TaggedField finds the field whose struct tag under key names the logical
// property, matching the first comma-separated segment of the tag value. This
// serves frameworks that address fields by their serialized name, e.g.
// TaggedField(t, "json", "user_name").
func TaggedField(t reflect.Type, key, name string) (reflect.StructField, bool) {
	st := structType(t)
	if st == nil || key == "" || name == "" {
		return reflect.StructField{}, false
	}
	for _, f := range reflect.VisibleFields(st) {
		tag, ok := f.Tag.Lookup(key)
		if !ok {
			continue
		}
		if value, _, _ := strings.Cut(tag, ","); value == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// MethodByName finds the method with exactly the given name, searching t's
// method set first and then *t's. The pointer method set is the Go analog of
// the declared-member fallback: it is the wider set, reached only when the
// narrower one misses.
func MethodByName(t reflect.Type, name string) (reflect.Method, bool) {
	if t == nil || name == "" {
		return reflect.Method{}, false
	}
	if m, ok := t.MethodByName(name); ok {
		return m, true
	}
	if t.Kind() != reflect.Pointer {
		if m, ok := reflect.PointerTo(t).MethodByName(name); ok {
			return m, true
		}
	}
	return reflect.Method{}, false
}

// Getter finds the first zero-parameter method matching the convention's
// candidate names for the logical property, in priority order.
func (c Convention) Getter(t reflect.Type, name string) (reflect.Method, bool) {
	for _, candidate := range c.GetterNames(name) {
		m, ok := MethodByName(t, candidate)
		if !ok {
			continue
		}
		if m.Type.NumIn() == receiverOffset(m) {
			return m, true
		}
	}
	return reflect.Method{}, false
}

// Setter finds the first one-parameter method accepting param that matches
// the convention's candidate names, in priority order. Go has no method
// overloading, so "exactly that parameter type" relaxes to assignability.
func (c Convention) Setter(t reflect.Type, name string, param reflect.Type) (reflect.Method, bool) {
	for _, candidate := range c.SetterNames(name) {
		m, ok := MethodByName(t, candidate)
		if !ok {
			continue
		}
		mt := m.Type
		offset := receiverOffset(m)
		if mt.NumIn() != offset+1 {
			continue
		}
		if param == nil || param == mt.In(offset) || param.AssignableTo(mt.In(offset)) {
			return m, true
		}
	}
	return reflect.Method{}, false
}

// Getter resolves with the default convention.
func Getter(t reflect.Type, name string) (reflect.Method, bool) {
	return DefaultConvention().Getter(t, name)
}

// Setter resolves with the default convention.
func Setter(t reflect.Type, name string, param reflect.Type) (reflect.Method, bool) {
	return DefaultConvention().Setter(t, name, param)
}

// Constructor reports the constructor shape available on constructed for the
// given parameter type: accepts is the accepted parameter type, nil when only
// the zero-argument form exists. Go surfaces no reflective constructors, so a
// one-parameter constructor exists exactly when param converts to the
// constructed type, and the zero-argument constructor always exists.
func Constructor(constructed, param reflect.Type) (accepts reflect.Type, ok bool) {
	if constructed == nil {
		return nil, false
	}
	if param != nil && param.ConvertibleTo(constructed) {
		return param, true
	}
	return nil, true
}

func structType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	return t
}
