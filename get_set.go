package mirror

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	errs "github.com/iagainey/mirror/errors"
	"github.com/iagainey/mirror/internal/access"
	"github.com/iagainey/mirror/lookup"
)

// outcome carries one dispatch result through the kind match.
type outcome struct {
	value reflect.Value
	found bool // an access target existed for the operation
	err   error
}

// Get reads the member's value from obj: a field read, a zero-argument method
// call, or a constructor invocation (a one-parameter constructor receives obj
// as its argument; a zero-parameter one ignores obj entirely). Any underlying
// failure collapses to the zero value and false.
func (m *Member[C, V]) Get(obj C) (V, bool) {
	v, err := m.getValue(obj)
	if err != nil || !v.IsValid() {
		var zero V
		return zero, false
	}
	out, err := valueAs[V](v)
	return out, err == nil
}

// GetStrict is Get with failures surfaced instead of swallowed. It
// additionally validates that a one-parameter constructor can accept the
// receiver's runtime type, reporting ErrIncompatibleArgument with the
// member's signature when it cannot. A void method yields the zero value and
// a nil error.
func (m *Member[C, V]) GetStrict(obj C) (V, error) {
	var zero V
	v, err := m.getValue(obj)
	if err != nil {
		return zero, err
	}
	if !v.IsValid() {
		return zero, nil
	}
	return valueAs[V](v)
}

func (m *Member[C, V]) getValue(obj C) (reflect.Value, error) {
	recv := reflect.ValueOf(obj)
	res := MatchKind(m.desc,
		func(f Field) outcome {
			v, err := access.FieldValue(recv, f.Owner, f.StructField.Index, m.opts.unexported)
			return outcome{value: v, found: true, err: err}
		},
		func(d Method) outcome {
			out, err := access.Invoke(recv, d.Method)
			if err != nil {
				return outcome{found: true, err: err}
			}
			v, err := resultValue(out)
			return outcome{value: v, found: true, err: err}
		},
		func(c Constructor) outcome {
			if c.NumIn() == 0 {
				v, err := c.New(reflect.Value{})
				return outcome{value: v, found: true, err: err}
			}
			if !recv.IsValid() || !c.accepts(recv.Type()) {
				return outcome{found: true, err: errorc.With(
					errs.ErrIncompatibleArgument,
					errorc.String(errs.ErrorFieldSignature, m.Signature()),
					errorc.String(errs.ErrorFieldReceiverType, typeName(recv)),
				)}
			}
			v, err := c.New(recv)
			return outcome{value: v, found: true, err: err}
		},
		outcome{err: errs.ErrEmptyMember},
	)
	if res.err != nil {
		return reflect.Value{}, res.err
	}
	return res.value, nil
}

// Set assigns val through the member: a field write or a one-parameter method
// call. Constructors are never assignment targets. Reports whether the
// assignment succeeded; failures are swallowed.
func (m *Member[C, V]) Set(obj C, val V) bool {
	found, err := m.setValue(obj, val)
	return found && err == nil
}

// SetStrict is Set with failures surfaced. The bool reports whether an
// assignment target existed at all: false for constructors and empty members,
// with a nil error, mirroring Get's treatment of "not found" as data.
func (m *Member[C, V]) SetStrict(obj C, val V) (bool, error) {
	return m.setValue(obj, val)
}

func (m *Member[C, V]) setValue(obj C, val V) (bool, error) {
	recv := reflect.ValueOf(obj)
	rv := reflect.ValueOf(val)
	res := MatchKind(m.desc,
		func(f Field) outcome {
			err := access.SetFieldValue(recv, f.Owner, f.StructField.Index, rv, m.opts.unexported)
			return outcome{found: true, err: err}
		},
		func(d Method) outcome {
			out, err := access.Invoke(recv, d.Method, rv)
			if err == nil {
				_, err = resultValue(out)
			}
			return outcome{found: true, err: err}
		},
		nil,
		outcome{},
	)
	return res.found, res.err
}

// IsSettable reports whether a Set can have an effect: the member is a field,
// or a setter-shaped method under the member's convention. Constructors are
// never settable.
func (m *Member[C, V]) IsSettable() bool {
	return MatchKind(m.desc,
		func(Field) bool { return true },
		func(d Method) bool { return m.opts.conv.IsSetterShaped(d.Method) },
		func(Constructor) bool { return false },
		false,
	)
}

// IsGettable reports whether a Get can produce a value: the member is a field
// or constructor, or a getter-shaped method.
func (m *Member[C, V]) IsGettable() bool {
	return MatchKind(m.desc,
		func(Field) bool { return true },
		func(d Method) bool { return lookup.IsGetterShaped(d.Method) },
		func(Constructor) bool { return true },
		false,
	)
}

func valueAs[V any](v reflect.Value) (V, error) {
	if out, ok := v.Interface().(V); ok {
		return out, nil
	}
	var zero V
	return zero, errorc.With(
		errs.ErrIncompatibleValue,
		errorc.String(errs.ErrorFieldValueType, v.Type().String()),
	)
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	return v.Type().String()
}
