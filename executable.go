package mirror

import "reflect"

// Executable is the uniform view over the two callable variants. It answers
// signature questions without the caller knowing whether a method or a
// constructor is behind it.
type Executable struct {
	d Descriptor // Method or Constructor
}

// Descriptor returns the underlying method or constructor descriptor.
func (e Executable) Descriptor() Descriptor { return e.d }

func (e Executable) Name() string {
	return MatchMember(e.d, Descriptor.Name, "")
}

// ParameterCount reports the number of parameters, excluding a method's
// receiver. -1 when the view is empty.
func (e Executable) ParameterCount() int {
	return MatchKind(e.d,
		nil,
		func(d Method) int {
			t := d.funcType()
			if t == nil {
				return -1
			}
			return t.NumIn() - d.paramOffset()
		},
		func(c Constructor) int { return c.NumIn() },
		-1,
	)
}

// ParameterTypes lists the parameter types, excluding a method's receiver.
func (e Executable) ParameterTypes() []reflect.Type {
	return MatchKind(e.d,
		nil,
		func(d Method) []reflect.Type {
			t := d.funcType()
			if t == nil {
				return nil
			}
			params := make([]reflect.Type, 0, t.NumIn())
			for i := d.paramOffset(); i < t.NumIn(); i++ {
				params = append(params, t.In(i))
			}
			return params
		},
		func(c Constructor) []reflect.Type {
			if c.param == nil {
				return nil
			}
			return []reflect.Type{c.param}
		},
		nil,
	)
}

// ReturnTypes lists the result types; a constructor produces exactly its
// constructed type.
func (e Executable) ReturnTypes() []reflect.Type {
	return MatchKind(e.d,
		nil,
		func(d Method) []reflect.Type {
			t := d.funcType()
			if t == nil {
				return nil
			}
			outs := make([]reflect.Type, 0, t.NumOut())
			for i := 0; i < t.NumOut(); i++ {
				outs = append(outs, t.Out(i))
			}
			return outs
		},
		func(c Constructor) []reflect.Type {
			if c.typ == nil {
				return nil
			}
			return []reflect.Type{c.typ}
		},
		nil,
	)
}

func (e Executable) IsVariadic() bool {
	return MatchKind(e.d,
		nil,
		func(d Method) bool {
			t := d.funcType()
			return t != nil && t.IsVariadic()
		},
		func(Constructor) bool { return false },
		false,
	)
}
