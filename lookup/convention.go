// Package lookup locates a best-matching field, accessor method, or
// constructor shape for a logical property name. Resolution is speculative by
// design: every function reports absence with a bool, never an error.
package lookup

import (
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/stoewer/go-strcase"

	"github.com/iagainey/mirror/constants"
)

// Convention describes the naming and shape heuristics used to resolve
// accessor methods. The zero value matches nothing useful; start from
// DefaultConvention.
type Convention struct {
	// GetterPrefixes are tried, in order, after the bare and capitalized
	// logical name when resolving a read accessor.
	GetterPrefixes []string
	// SetterPrefixes are tried, in order, after the bare and capitalized
	// logical name when resolving a write accessor.
	SetterPrefixes []string
	// FluentSetters treats a one-parameter method returning its own declaring
	// type as setter-shaped. This is a convention, not a guarantee; disable it
	// for codebases where such methods are not setters.
	FluentSetters bool
	// Normalize, when set, rewrites the logical name before capitalization and
	// prefixing, e.g. UpperCamel maps "user_name" to "UserName".
	Normalize func(string) string
}

// DefaultConvention matches bare names and the Get/Has/Is and Set prefixes,
// with fluent setters enabled.
func DefaultConvention() Convention {
	return Convention{
		GetterPrefixes: []string{constants.PrefixGet, constants.PrefixHas, constants.PrefixIs},
		SetterPrefixes: []string{constants.PrefixSet},
		FluentSetters:  true,
	}
}

// UpperCamel converts snake_case or kebab-case logical names to UpperCamelCase.
// Intended as a Convention.Normalize for logical names coming from json or db
// tags.
func UpperCamel(name string) string {
	return strcase.UpperCamelCase(name)
}

// Capitalize upper-cases only the first rune of name, leaving the remainder
// unchanged.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// GetterNames generates the ordered candidate method names for a read
// accessor: the bare name, its capitalized form, then each getter prefix.
func (c Convention) GetterNames(name string) []string {
	return c.candidates(name, c.GetterPrefixes)
}

// SetterNames generates the ordered candidate method names for a write
// accessor: the bare name, its capitalized form, then each setter prefix.
func (c Convention) SetterNames(name string) []string {
	return c.candidates(name, c.SetterPrefixes)
}

// FieldNames generates the ordered candidate field names: the bare name,
// then its capitalized form. Go spells visibility into the name itself, so a
// logical "count" must also try the exported "Count".
func (c Convention) FieldNames(name string) []string {
	return c.candidates(name, nil)
}

func (c Convention) candidates(name string, prefixes []string) []string {
	effective := name
	if c.Normalize != nil {
		effective = c.Normalize(name)
	}
	effective = Capitalize(effective)

	out := make([]string, 0, len(prefixes)+2)
	out = appendUnique(out, name)
	out = appendUnique(out, effective)
	for _, p := range prefixes {
		out = appendUnique(out, p+effective)
	}
	return out
}

func appendUnique(names []string, name string) []string {
	if name == "" {
		return names
	}
	for _, n := range names {
		if n == name {
			return names
		}
	}
	return append(names, name)
}

// IsGetterShaped reports whether m takes no parameters (beyond its receiver)
// and produces at least one result. The method must come from
// reflect.Type.MethodByName or reflect.Type.Method.
func IsGetterShaped(m reflect.Method) bool {
	t := m.Type
	if t == nil {
		return false
	}
	return t.NumIn() == receiverOffset(m) && t.NumOut() >= 1
}

// IsSetterShaped reports whether m takes exactly one parameter and either
// produces no result or, under the fluent-setter convention, returns its own
// declaring type.
func (c Convention) IsSetterShaped(m reflect.Method) bool {
	t := m.Type
	if t == nil {
		return false
	}
	offset := receiverOffset(m)
	if t.NumIn() != offset+1 {
		return false
	}
	if t.NumOut() == 0 {
		return true
	}
	if !c.FluentSetters || offset == 0 {
		return false
	}
	return baseType(t.Out(0)) == baseType(t.In(0))
}

// receiverOffset is 1 when the method type carries the receiver as parameter
// zero (concrete types), 0 for interface methods.
func receiverOffset(m reflect.Method) int {
	if m.Func.IsValid() {
		return 1
	}
	return 0
}

func baseType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
