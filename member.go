// Package mirror unifies Go's three member introspection shapes — struct
// fields, methods, and constructor-like factories — behind one handle, so
// callers that need "get/set a named property" do not branch on which
// reflection primitive backs a given member.
package mirror

import (
	"reflect"

	"github.com/iagainey/mirror/lookup"
)

// Kind identifies which member variant a descriptor holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindField
	KindMethod
	KindConstructor
)

func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindMethod:
		return "method"
	case KindConstructor:
		return "constructor"
	default:
		return "empty"
	}
}

// Descriptor identifies a single field, method, or constructor on a declaring
// type. The three implementations are Field, Method, and Constructor; a nil
// Descriptor is the empty case. Descriptors are plain values referencing
// runtime type metadata; they own nothing.
type Descriptor interface {
	Kind() Kind
	Name() string
	DeclaringType() reflect.Type

	sealedDescriptor()
}

// Field identifies a named storage slot on a declaring struct type.
type Field struct {
	// Owner is the struct type declaring the field.
	Owner reflect.Type
	// StructField carries the field metadata, including its index path.
	StructField reflect.StructField
}

func (f Field) Kind() Kind                  { return KindField }
func (f Field) Name() string                { return f.StructField.Name }
func (f Field) DeclaringType() reflect.Type { return f.Owner }
func (f Field) Type() reflect.Type          { return f.StructField.Type }
func (f Field) IsExported() bool            { return f.StructField.IsExported() }
func (f Field) Tag() reflect.StructTag      { return f.StructField.Tag }
func (f Field) sealedDescriptor()           {}

// Method identifies a named callable on a declaring type.
type Method struct {
	// Owner is the type whose method set the method was found in; for
	// pointer-receiver methods this is *T rather than T.
	Owner reflect.Type
	// Method carries the method metadata as returned by
	// reflect.Type.MethodByName.
	Method reflect.Method
}

func (d Method) Kind() Kind   { return KindMethod }
func (d Method) Name() string { return d.Method.Name }

func (d Method) DeclaringType() reflect.Type {
	if d.Owner != nil {
		return d.Owner
	}
	if d.Method.Func.IsValid() {
		return d.Method.Func.Type().In(0)
	}
	return nil
}

func (d Method) sealedDescriptor() {}

// funcType is the method's signature. For concrete types it includes the
// receiver as the first parameter; for interface types it does not.
func (d Method) funcType() reflect.Type { return d.Method.Type }

// paramOffset is 1 when funcType carries the receiver as parameter zero.
func (d Method) paramOffset() int {
	if d.Method.Func.IsValid() {
		return 1
	}
	return 0
}

// Member unifies field, method, and constructor access behind one handle.
// C is the advisory declaring type and V the advisory value type; neither is
// checked against the wrapped descriptor until a value actually flows through
// it. A Member is immutable after construction and safe for concurrent use.
type Member[C any, V any] struct {
	desc Descriptor
	opts settings
}

type settings struct {
	conv       lookup.Convention
	unexported bool
	tagKey     string
}

func defaultSettings() settings {
	return settings{conv: lookup.DefaultConvention()}
}

// Option configures member construction and name resolution.
type Option func(*settings)

// WithConvention replaces the naming convention used to resolve accessor
// methods and to classify setter shapes.
func WithConvention(c lookup.Convention) Option {
	return func(s *settings) { s.conv = c }
}

// WithUnexportedAccess permits reading and writing unexported fields through
// the member. Writes still require an addressable receiver.
func WithUnexportedAccess() Option {
	return func(s *settings) { s.unexported = true }
}

// WithTagKey makes name resolution additionally match fields whose struct tag
// under key names the logical property, e.g. WithTagKey("json") resolves
// "user_name" to a field tagged `json:"user_name"`.
func WithTagKey(key string) Option {
	return func(s *settings) { s.tagKey = key }
}

func applyOptions(options []Option) settings {
	s := defaultSettings()
	for _, o := range options {
		if o != nil {
			o(&s)
		}
	}
	return s
}

// Descriptor returns the wrapped descriptor, nil when empty.
func (m *Member[C, V]) Descriptor() Descriptor { return m.desc }

// Kind reports the variant held by the member.
func (m *Member[C, V]) Kind() Kind {
	if m.desc == nil {
		return KindEmpty
	}
	return m.desc.Kind()
}

func (m *Member[C, V]) IsEmpty() bool       { return m.desc == nil }
func (m *Member[C, V]) IsMember() bool      { return m.desc != nil }
func (m *Member[C, V]) IsField() bool       { return m.Kind() == KindField }
func (m *Member[C, V]) IsMethod() bool      { return m.Kind() == KindMethod }
func (m *Member[C, V]) IsConstructor() bool { return m.Kind() == KindConstructor }

// IsExecutable reports whether the member is a method or a constructor.
func (m *Member[C, V]) IsExecutable() bool {
	k := m.Kind()
	return k == KindMethod || k == KindConstructor
}

// Field narrows the member to its field descriptor; absence is the signaled
// outcome for a mismatched narrow, never a panic.
func (m *Member[C, V]) Field() (Field, bool) {
	f, ok := m.desc.(Field)
	return f, ok
}

// Method narrows the member to its method descriptor.
func (m *Member[C, V]) Method() (Method, bool) {
	d, ok := m.desc.(Method)
	return d, ok
}

// Constructor narrows the member to its constructor descriptor.
func (m *Member[C, V]) Constructor() (Constructor, bool) {
	c, ok := m.desc.(Constructor)
	return c, ok
}

// Executable narrows the member to the uniform callable view shared by
// methods and constructors.
func (m *Member[C, V]) Executable() (Executable, bool) {
	if !m.IsExecutable() {
		return Executable{}, false
	}
	return Executable{d: m.desc}, true
}

// With returns a copy of the member with the options applied; the receiver is
// unchanged.
func (m *Member[C, V]) With(options ...Option) *Member[C, V] {
	cp := *m
	for _, o := range options {
		if o != nil {
			o(&cp.opts)
		}
	}
	return &cp
}

// MatchKind applies the function matching the descriptor's variant and
// returns its result. A nil function for the matching variant, or an empty
// descriptor, yields fallback. Every kind-dependent behavior in this package
// is built on the three Match functions.
func MatchKind[O any](d Descriptor, onField func(Field) O, onMethod func(Method) O, onConstructor func(Constructor) O, fallback O) O {
	switch v := d.(type) {
	case Field:
		if onField != nil {
			return onField(v)
		}
	case Method:
		if onMethod != nil {
			return onMethod(v)
		}
	case Constructor:
		if onConstructor != nil {
			return onConstructor(v)
		}
	}
	return fallback
}

// MatchExecutable applies onExecutable when the descriptor is a method or
// constructor, and returns fallback otherwise.
func MatchExecutable[O any](d Descriptor, onExecutable func(Executable) O, fallback O) O {
	switch d.(type) {
	case Method, Constructor:
		if onExecutable != nil {
			return onExecutable(Executable{d: d})
		}
	}
	return fallback
}

// MatchMember applies onMember when the descriptor is non-empty, and returns
// fallback otherwise.
func MatchMember[O any](d Descriptor, onMember func(Descriptor) O, fallback O) O {
	if d == nil || onMember == nil {
		return fallback
	}
	return onMember(d)
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// resultValue collapses a reflective call's results to the produced value.
// A trailing non-nil error result is surfaced; a void call produces an
// invalid value. Only an interface-typed trailing result counts as an error:
// a concrete result type that happens to implement error is a value.
func resultValue(out []reflect.Value) (reflect.Value, error) {
	if len(out) == 0 {
		return reflect.Value{}, nil
	}
	last := out[len(out)-1]
	if last.Kind() == reflect.Interface && last.Type().Implements(errType) {
		if !last.IsNil() {
			return reflect.Value{}, last.Interface().(error)
		}
		out = out[:len(out)-1]
		if len(out) == 0 {
			return reflect.Value{}, nil
		}
	}
	return out[0], nil
}
