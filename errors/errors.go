package errors

import (
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/iagainey/mirror/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors for member access failures. Use errors.Is to match.
var (
	ErrEmptyMember          = namespace.NewError("member is empty")
	ErrNilReceiver          = namespace.NewError("receiver is nil")
	ErrIncompatibleReceiver = namespace.NewError("receiver type does not match declaring type")
	ErrIncompatibleArgument = namespace.NewError("constructor cannot accept receiver argument")
	ErrIncompatibleValue    = namespace.NewError("value type is not assignable")
	ErrUnexportedMember     = namespace.NewError("unexported member is not accessible")
	ErrNotAddressable       = namespace.NewError("receiver must be a non-nil pointer for assignment")
	ErrArgumentCount        = namespace.NewError("incorrect number of arguments")
	ErrInvocation           = namespace.NewError("invocation failed")
	ErrInvalidConstructor   = namespace.NewError("constructor must be a func with at most one parameter and at least one result")
)

var newKey = keyFactory(constants.ErrorFieldNamespace)

// keyFactory builds dotted structured-field keys: the namespace, then any
// segments, then the key name.
func keyFactory(ns string) func(name string, segments ...string) string {
	return func(name string, segments ...string) string {
		return strings.Join(append(append([]string{ns}, segments...), name), ".")
	}
}

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentMember = "member"
)

// Exported structured error field keys
var (
	ErrorFieldMemberName = newKey("name", keySegmentMember)      // mirror.member.name
	ErrorFieldMemberKind = newKey("kind", keySegmentMember)      // mirror.member.kind (reserved)
	ErrorFieldSignature  = newKey("signature", keySegmentMember) // mirror.member.signature
)

var (
	ErrorFieldReceiverType = newKey("receiver_type")
	ErrorFieldValueType    = newKey("value_type")
	ErrorFieldParamType    = newKey("param_type")
	ErrorFieldCause        = newKey("cause")
)
