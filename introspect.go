package mirror

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/iagainey/mirror/constants"
)

// Name returns the member's name, or the "null" sentinel when empty. A
// constructor is named after its constructed type.
func (m *Member[C, V]) Name() string {
	return MatchMember(m.desc, Descriptor.Name, constants.NameSentinel)
}

// DeclaringType returns the type declaring the member, nil when empty. For
// pointer-receiver methods this is *T.
func (m *Member[C, V]) DeclaringType() reflect.Type {
	return MatchMember(m.desc, Descriptor.DeclaringType, nil)
}

// ValueType is the type a Get would produce: the field type, a getter's first
// result, or the constructed type. Nil for empty members and void methods.
func (m *Member[C, V]) ValueType() reflect.Type {
	return MatchKind(m.desc,
		func(f Field) reflect.Type { return f.StructField.Type },
		func(d Method) reflect.Type {
			outs := (Executable{d: d}).ReturnTypes()
			for _, t := range outs {
				if t != errType {
					return t
				}
			}
			return nil
		},
		func(c Constructor) reflect.Type { return c.typ },
		nil,
	)
}

// IsExported reports the member's visibility. Methods and constructors
// reachable through reflection are always exported; only fields can be
// unexported.
func (m *Member[C, V]) IsExported() bool {
	return MatchKind(m.desc,
		func(f Field) bool { return f.StructField.IsExported() },
		func(Method) bool { return true },
		func(Constructor) bool { return true },
		false,
	)
}

// ParameterCount reports an executable's parameter count, -1 otherwise.
func (m *Member[C, V]) ParameterCount() int {
	return MatchExecutable(m.desc, Executable.ParameterCount, -1)
}

// ParameterTypes lists an executable's parameter types, nil otherwise.
func (m *Member[C, V]) ParameterTypes() []reflect.Type {
	return MatchExecutable(m.desc, Executable.ParameterTypes, nil)
}

// ReturnTypes lists an executable's result types, nil otherwise.
func (m *Member[C, V]) ReturnTypes() []reflect.Type {
	return MatchExecutable(m.desc, Executable.ReturnTypes, nil)
}

// IsVariadic reports whether an executable member is variadic.
func (m *Member[C, V]) IsVariadic() bool {
	return MatchExecutable(m.desc, Executable.IsVariadic, false)
}

// Tag returns a field member's struct tag, empty otherwise. Struct tags are
// the Go counterpart of the member annotations serialization frameworks hang
// their configuration on.
func (m *Member[C, V]) Tag() reflect.StructTag {
	return MatchKind(m.desc,
		func(f Field) reflect.StructTag { return f.StructField.Tag },
		nil,
		nil,
		reflect.StructTag(""),
	)
}

// TagLookup returns the value of key in a field member's struct tag.
func (m *Member[C, V]) TagLookup(key string) (string, bool) {
	f, ok := m.desc.(Field)
	if !ok {
		return "", false
	}
	return f.StructField.Tag.Lookup(key)
}

// Signature renders a human-readable description: visibility, kind, name,
// and for executables a parenthesized parameter type list. The empty member
// renders as the literal "null".
func (m *Member[C, V]) Signature() string {
	if m.desc == nil {
		return constants.NameSentinel
	}
	visibility := "unexported"
	if m.IsExported() {
		visibility = "exported"
	}
	if e, ok := m.Executable(); ok {
		params := make([]string, 0, e.ParameterCount())
		for _, t := range e.ParameterTypes() {
			params = append(params, t.String())
		}
		return fmt.Sprintf("%s %s %s(%s)", visibility, m.Kind(), m.Name(), strings.Join(params, ", "))
	}
	f, _ := m.Field()
	return fmt.Sprintf("%s %s %s %s", visibility, m.Kind(), m.Name(), f.StructField.Type)
}

// String renders the member's signature.
func (m *Member[C, V]) String() string { return m.Signature() }

// Equal reports whether both members wrap the same descriptor; two empty
// members are equal.
func (m *Member[C, V]) Equal(other *Member[C, V]) bool {
	if other == nil {
		return false
	}
	return descriptorsEqual(m.desc, other.desc)
}

// EqualDescriptor reports whether the member wraps the given bare descriptor.
func (m *Member[C, V]) EqualDescriptor(d Descriptor) bool {
	return descriptorsEqual(m.desc, d)
}

func descriptorsEqual(a, b Descriptor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Field:
		bv := b.(Field)
		return av.Owner == bv.Owner &&
			av.StructField.Name == bv.StructField.Name &&
			slices.Equal(av.StructField.Index, bv.StructField.Index)
	case Method:
		bv := b.(Method)
		return av.DeclaringType() == bv.DeclaringType() && av.Method.Name == bv.Method.Name
	case Constructor:
		bv := b.(Constructor)
		if av.typ != bv.typ || av.param != bv.param || av.form != bv.form {
			return false
		}
		if av.form != ctorFunc {
			return true
		}
		return av.fn.Pointer() == bv.fn.Pointer()
	}
	return false
}

// FieldsOf wraps every visible field of C, outermost first, including
// promoted and unexported fields.
func FieldsOf[C any](options ...Option) []*Member[C, any] {
	t := derefStruct(typeFor[C]())
	if t == nil {
		return nil
	}
	fields := reflect.VisibleFields(t)
	members := make([]*Member[C, any], 0, len(fields))
	for _, sf := range fields {
		members = append(members, New[C, any](Field{Owner: t, StructField: sf}, options...))
	}
	return members
}

// MethodsOf wraps every method of C, value method set first, then the
// methods only reachable through *C.
func MethodsOf[C any](options ...Option) []*Member[C, any] {
	t := typeFor[C]()
	seen := make(map[string]bool)
	var members []*Member[C, any]
	collect := func(tt reflect.Type) {
		for i := 0; i < tt.NumMethod(); i++ {
			mt := tt.Method(i)
			if seen[mt.Name] {
				continue
			}
			seen[mt.Name] = true
			members = append(members, New[C, any](Method{Owner: tt, Method: mt}, options...))
		}
	}
	collect(t)
	if t.Kind() != reflect.Pointer {
		collect(reflect.PointerTo(t))
	}
	return members
}

// MembersOf wraps C's fields and methods, fields first.
func MembersOf[C any](options ...Option) []*Member[C, any] {
	return append(FieldsOf[C](options...), MethodsOf[C](options...)...)
}
