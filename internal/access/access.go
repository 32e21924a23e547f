// Package access performs the raw reflective reads, writes, and invocations
// behind a member handle. It normalizes receivers, contains invocation panics,
// and gates unexported-field access.
package access

import (
	"reflect"
	"unsafe"

	"github.com/gregwebs/go-recovery"
	"github.com/ygrebnov/errorc"

	errs "github.com/iagainey/mirror/errors"
)

// FieldValue reads the field at index on the struct declared by owner,
// reachable from recv. Unexported fields are readable only when
// allowUnexported is set; the read then goes through an addressable copy when
// recv itself is not addressable.
func FieldValue(recv reflect.Value, owner reflect.Type, index []int, allowUnexported bool) (reflect.Value, error) {
	sv, err := structValue(recv, owner)
	if err != nil {
		return reflect.Value{}, err
	}
	f, err := sv.FieldByIndexErr(index)
	if err != nil {
		// A nil embedded pointer on the path; the field is unreachable.
		return reflect.Value{}, errorc.With(
			errs.ErrNilReceiver,
			errorc.String(errs.ErrorFieldCause, err.Error()),
		)
	}
	if f.CanInterface() {
		return f, nil
	}
	if !allowUnexported {
		return reflect.Value{}, errorc.With(
			errs.ErrUnexportedMember,
			errorc.String(errs.ErrorFieldReceiverType, sv.Type().String()),
		)
	}
	if !f.CanAddr() {
		cp := reflect.New(sv.Type()).Elem()
		cp.Set(sv)
		f, _ = cp.FieldByIndexErr(index)
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem(), nil
}

// SetFieldValue writes val to the field at index on the struct declared by
// owner. recv must be a non-nil pointer so the write is visible to the
// caller. Nil embedded pointers on the path are allocated. An invalid val
// zeroes nilable fields.
func SetFieldValue(recv reflect.Value, owner reflect.Type, index []int, val reflect.Value, allowUnexported bool) error {
	if !recv.IsValid() {
		return errs.ErrNilReceiver
	}
	if recv.Kind() != reflect.Pointer {
		return errorc.With(
			errs.ErrNotAddressable,
			errorc.String(errs.ErrorFieldReceiverType, recv.Type().String()),
		)
	}
	sv, err := structValue(recv, owner)
	if err != nil {
		return err
	}
	if !sv.CanAddr() {
		return errs.ErrNotAddressable
	}

	f := sv
	for _, i := range index {
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				if !f.CanSet() {
					return errs.ErrNotAddressable
				}
				f.Set(reflect.New(f.Type().Elem()))
			}
			f = f.Elem()
		}
		f = f.Field(i)
	}

	target := f
	if !target.CanSet() {
		if !allowUnexported {
			return errorc.With(
				errs.ErrUnexportedMember,
				errorc.String(errs.ErrorFieldReceiverType, sv.Type().String()),
			)
		}
		if !target.CanAddr() {
			return errs.ErrNotAddressable
		}
		target = reflect.NewAt(target.Type(), unsafe.Pointer(target.UnsafeAddr())).Elem()
	}
	return assign(target, val)
}

// Invoke calls the method on recv with args, adapting the receiver between T
// and *T where possible. Results are returned unprocessed.
func Invoke(recv reflect.Value, m reflect.Method, args ...reflect.Value) ([]reflect.Value, error) {
	if !recv.IsValid() {
		return nil, errs.ErrNilReceiver
	}

	var fn reflect.Value
	var in []reflect.Value
	if m.Func.IsValid() {
		r, err := adaptReceiver(recv, m.Func.Type().In(0))
		if err != nil {
			return nil, err
		}
		fn = m.Func
		in = append([]reflect.Value{r}, args...)
	} else {
		// Interface method descriptor: bind through the receiver value.
		fn = recv.MethodByName(m.Name)
		if !fn.IsValid() {
			return nil, errorc.With(
				errs.ErrIncompatibleReceiver,
				errorc.String(errs.ErrorFieldMemberName, m.Name),
				errorc.String(errs.ErrorFieldReceiverType, recv.Type().String()),
			)
		}
		in = args
	}

	ft := fn.Type()
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(in) < fixed {
			return nil, argumentCountError(m.Name)
		}
	} else if len(in) != ft.NumIn() {
		return nil, argumentCountError(m.Name)
	}

	start := 0
	if m.Func.IsValid() {
		start = 1 // receiver already adapted
	}
	for i := start; i < len(in); i++ {
		var pt reflect.Type
		if ft.IsVariadic() && i >= fixed {
			pt = ft.In(ft.NumIn() - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		if !in[i].IsValid() {
			in[i] = reflect.Zero(pt)
			continue
		}
		if !in[i].Type().AssignableTo(pt) {
			return nil, errorc.With(
				errs.ErrIncompatibleValue,
				errorc.String(errs.ErrorFieldMemberName, m.Name),
				errorc.String(errs.ErrorFieldValueType, in[i].Type().String()),
				errorc.String(errs.ErrorFieldParamType, pt.String()),
			)
		}
	}
	return Call(fn, in...)
}

// Call invokes fn, converting a panic during the call into an ErrInvocation.
func Call(fn reflect.Value, in ...reflect.Value) ([]reflect.Value, error) {
	var out []reflect.Value
	callErr := recovery.Call(func() error {
		out = fn.Call(in)
		return nil
	})
	if callErr != nil {
		return nil, errorc.With(
			errs.ErrInvocation,
			errorc.String(errs.ErrorFieldCause, callErr.Error()),
		)
	}
	return out, nil
}

// structValue normalizes recv to the struct value declaring the member,
// dereferencing pointers on both sides.
func structValue(recv reflect.Value, owner reflect.Type) (reflect.Value, error) {
	if !recv.IsValid() {
		return reflect.Value{}, errs.ErrNilReceiver
	}
	v := recv
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.Kind() == reflect.Pointer && v.IsNil() {
			return reflect.Value{}, errs.ErrNilReceiver
		}
		if v.Kind() == reflect.Interface && v.IsNil() {
			return reflect.Value{}, errs.ErrNilReceiver
		}
		v = v.Elem()
	}
	want := owner
	for want != nil && want.Kind() == reflect.Pointer {
		want = want.Elem()
	}
	if v.Kind() != reflect.Struct || (want != nil && v.Type() != want) {
		return reflect.Value{}, errorc.With(
			errs.ErrIncompatibleReceiver,
			errorc.String(errs.ErrorFieldReceiverType, recv.Type().String()),
		)
	}
	return v, nil
}

// adaptReceiver converts recv to the method's expected receiver type,
// taking an addressable copy when a pointer receiver meets a value.
func adaptReceiver(recv reflect.Value, want reflect.Type) (reflect.Value, error) {
	if recv.Type() == want || recv.Type().AssignableTo(want) {
		return recv, nil
	}
	if want.Kind() == reflect.Pointer && recv.Type() == want.Elem() {
		cp := reflect.New(recv.Type())
		cp.Elem().Set(recv)
		return cp, nil
	}
	if recv.Kind() == reflect.Pointer && !recv.IsNil() && recv.Type().Elem().AssignableTo(want) {
		return recv.Elem(), nil
	}
	return reflect.Value{}, errorc.With(
		errs.ErrIncompatibleReceiver,
		errorc.String(errs.ErrorFieldReceiverType, recv.Type().String()),
	)
}

// assign writes val into dst, zeroing nilable kinds for an invalid val.
func assign(dst reflect.Value, val reflect.Value) error {
	if !val.IsValid() {
		switch dst.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		return errs.ErrIncompatibleValue
	}
	if !val.Type().AssignableTo(dst.Type()) {
		return errorc.With(
			errs.ErrIncompatibleValue,
			errorc.String(errs.ErrorFieldValueType, val.Type().String()),
			errorc.String(errs.ErrorFieldParamType, dst.Type().String()),
		)
	}
	dst.Set(val)
	return nil
}

func argumentCountError(name string) error {
	return errorc.With(
		errs.ErrArgumentCount,
		errorc.String(errs.ErrorFieldMemberName, name),
	)
}
