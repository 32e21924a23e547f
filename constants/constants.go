package constants

const Namespace = "mirror"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// Accessor-method name prefixes tried during name resolution, in the order
// getter and setter lookup declare them.
const (
	PrefixGet = "Get"
	PrefixHas = "Has"
	PrefixIs  = "Is"
	PrefixSet = "Set"
)

// NameSentinel is returned by Name and Signature when a member is empty.
const NameSentinel = "null"
