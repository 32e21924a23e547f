package mirror

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	errs "github.com/iagainey/mirror/errors"
	"github.com/iagainey/mirror/internal/access"
	"github.com/iagainey/mirror/lookup"
)

// Go has no reflective constructors, so a constructor descriptor is one of
// three forms: the zero-value constructor every type has, a conversion from a
// parameter type, or an explicit factory function.
type ctorForm uint8

const (
	ctorZero ctorForm = iota
	ctorConversion
	ctorFunc
)

// Constructor identifies a callable producing a new instance of a constructed
// type, with zero or one parameter.
type Constructor struct {
	typ   reflect.Type
	param reflect.Type // nil for the zero-argument form
	form  ctorForm
	fn    reflect.Value // set only for factory constructors
}

func (c Constructor) Kind() Kind { return KindConstructor }

func (c Constructor) Name() string {
	if c.typ == nil {
		return ""
	}
	if c.typ.Name() != "" {
		return c.typ.Name()
	}
	return c.typ.String()
}

func (c Constructor) DeclaringType() reflect.Type { return c.typ }
func (c Constructor) sealedDescriptor()           {}

// ConstructedType is the type a successful New produces.
func (c Constructor) ConstructedType() reflect.Type { return c.typ }

// ParamType is the single accepted parameter type, nil for the zero-argument
// form.
func (c Constructor) ParamType() reflect.Type { return c.param }

func (c Constructor) NumIn() int {
	if c.param == nil {
		return 0
	}
	return 1
}

// accepts reports whether an argument of type t can flow into the
// constructor's parameter.
func (c Constructor) accepts(t reflect.Type) bool {
	if c.param == nil {
		return true
	}
	if t == nil {
		return false
	}
	if c.form == ctorConversion {
		return t.ConvertibleTo(c.typ)
	}
	return t.AssignableTo(c.param) || t.ConvertibleTo(c.param)
}

// New invokes the constructor. The argument is ignored by the zero-argument
// form; the one-parameter forms require a compatible argument.
func (c Constructor) New(arg reflect.Value) (reflect.Value, error) {
	if c.typ == nil {
		return reflect.Value{}, errs.ErrInvalidConstructor
	}
	switch c.form {
	case ctorConversion:
		if !arg.IsValid() || !arg.Type().ConvertibleTo(c.typ) {
			return reflect.Value{}, errorc.With(
				errs.ErrIncompatibleArgument,
				errorc.String(errs.ErrorFieldParamType, c.param.String()),
			)
		}
		return arg.Convert(c.typ), nil
	case ctorFunc:
		var in []reflect.Value
		if c.param != nil {
			if !arg.IsValid() {
				return reflect.Value{}, errorc.With(
					errs.ErrIncompatibleArgument,
					errorc.String(errs.ErrorFieldParamType, c.param.String()),
				)
			}
			if !arg.Type().AssignableTo(c.param) {
				if !arg.Type().ConvertibleTo(c.param) {
					return reflect.Value{}, errorc.With(
						errs.ErrIncompatibleArgument,
						errorc.String(errs.ErrorFieldParamType, c.param.String()),
						errorc.String(errs.ErrorFieldValueType, arg.Type().String()),
					)
				}
				arg = arg.Convert(c.param)
			}
			in = []reflect.Value{arg}
		}
		out, err := access.Call(c.fn, in...)
		if err != nil {
			return reflect.Value{}, err
		}
		return resultValue(out)
	default:
		return reflect.New(c.typ).Elem(), nil
	}
}

// ZeroConstructor is the zero-argument constructor of t, producing t's zero
// value. Every non-nil type has one.
func ZeroConstructor(t reflect.Type) Constructor {
	return Constructor{typ: t, form: ctorZero}
}

// ConversionConstructor is the one-parameter constructor of t accepting
// param, available when param is convertible to t.
func ConversionConstructor(t, param reflect.Type) (Constructor, bool) {
	if t == nil || param == nil || !param.ConvertibleTo(t) {
		return Constructor{}, false
	}
	return Constructor{typ: t, param: param, form: ctorConversion}, true
}

// FuncConstructor wraps a factory function as a constructor descriptor. fn
// must be a non-variadic func with at most one parameter and at least one
// result; a trailing error result is surfaced by New.
func FuncConstructor(fn any) (Constructor, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return Constructor{}, errs.ErrInvalidConstructor
	}
	ft := v.Type()
	if ft.NumIn() > 1 || ft.NumOut() < 1 || ft.IsVariadic() {
		return Constructor{}, errs.ErrInvalidConstructor
	}
	c := Constructor{typ: ft.Out(0), form: ctorFunc, fn: v}
	if ft.NumIn() == 1 {
		c.param = ft.In(0)
	}
	return c, nil
}

// ConstructorFor resolves the constructor on constructed accepting param,
// falling back to the zero-argument constructor.
func ConstructorFor(constructed, param reflect.Type) (Constructor, bool) {
	accepts, ok := lookup.Constructor(constructed, param)
	if !ok {
		return Constructor{}, false
	}
	if accepts != nil {
		return Constructor{typ: constructed, param: accepts, form: ctorConversion}, true
	}
	return ZeroConstructor(constructed), true
}
