package mirror

import "errors"

// ---- Types under test ----

// widget exercises every member kind: exported and unexported fields, value
// and pointer receiver methods, getter and setter shapes.
type widget struct {
	Label string `json:"label,omitempty" db:"label_col,primary"`
	Count int
	note  string
	Inner nested
	Link  *nested
}

type nested struct {
	Score int
}

// Part is exported so a write through the embedded pointer can allocate it.
type Part struct {
	Serial int
}

// wrapper promotes Part's fields through an embedded pointer.
type wrapper struct {
	*Part
}

func (w widget) Ready() bool   { return w.Count > 0 }
func (w widget) IsReady() bool { return w.Count > 0 }

func (w widget) Describe() string { return "widget " + w.Label }

func (w *widget) SetCount(n int) { w.Count = n }

// SetLabel follows the fluent-setter convention.
func (w *widget) SetLabel(s string) *widget {
	w.Label = s
	return w
}

func (w widget) Fail() (string, error) { return "", errors.New("boom") }

func (w widget) Panics() string { panic("kaboom") }

func (w widget) Noop() {}

func (w *widget) Clone() widget { return *w }

// probe exposes only an Is-prefixed accessor for its state.
type probe struct {
	ok bool
}

func (p probe) IsReady() bool { return p.ok }

// record has a field and a prefixed getter competing for the same logical
// name, but no setter.
type record struct {
	Value string
}

func (r record) GetValue() string { return "get:" + r.Value }

// temperature is conversion-constructible from numeric types.
type temperature float64

// statusCode is a concrete value type that happens to implement error.
type statusCode int

func (s statusCode) Error() string { return "status" }

type service struct{}

func (s service) Status() statusCode { return 7 }
