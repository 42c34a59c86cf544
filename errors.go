package guard

import (
	"errors"
	"log/slog"
)

// Kind classifies a guard failure.
type Kind string

// Argument presence
const (
	// KindNullArgument indicates a required value was nil.
	KindNullArgument Kind = "null_argument"
	// KindEmptyArgument indicates a collection or identifier was present but empty.
	KindEmptyArgument Kind = "empty_argument"
	// KindBlankString indicates a string was empty or whitespace only.
	KindBlankString Kind = "blank_string"
)

// Ordering
const (
	// KindOutOfRange indicates a value violated a lower and/or upper bound.
	KindOutOfRange Kind = "out_of_range"
	// KindInvalidBounds indicates two values broke a pairwise relation,
	// typically a lower bound configured above its upper bound.
	KindInvalidBounds Kind = "invalid_bounds"
)

// Membership
const (
	// KindNotDefinedEnumValue indicates a value is not a member of its enumeration.
	KindNotDefinedEnumValue Kind = "not_defined_enum_value"
	// KindNotInWhitelist indicates a value is not one of the allowed values.
	KindNotInWhitelist Kind = "not_in_whitelist"
)

// Format
const (
	// KindPatternMismatch indicates a string does not match a regular expression.
	KindPatternMismatch Kind = "pattern_mismatch"
	// KindInvalidPattern indicates the regular expression itself does not compile.
	KindInvalidPattern Kind = "invalid_pattern"
	// KindInvalidHexString indicates a string is not well-formed hex.
	KindInvalidHexString Kind = "invalid_hex_string"
	// KindHexByteSizeViolation indicates a hex string decodes to a disallowed number of bytes.
	KindHexByteSizeViolation Kind = "hex_byte_size_violation"
	// KindInvalidUUID indicates a string is not a parseable UUID.
	KindInvalidUUID Kind = "invalid_uuid"
)

// Sentinel errors, one per Kind. Every *Error unwraps to the sentinel of its kind,
// so callers can branch with errors.Is.
var (
	ErrNullArgument          = errors.New("argument is nil")
	ErrEmptyArgument         = errors.New("argument is empty")
	ErrBlankString           = errors.New("string is blank")
	ErrOutOfRange            = errors.New("argument out of range")
	ErrInvalidBounds         = errors.New("invalid bounds")
	ErrNotDefinedEnumValue   = errors.New("value not defined in enum")
	ErrNotInWhitelist        = errors.New("value not in whitelist")
	ErrPatternMismatch       = errors.New("value does not match pattern")
	ErrInvalidPattern        = errors.New("invalid regex pattern")
	ErrInvalidHexString      = errors.New("invalid hex string")
	ErrHexByteSizeViolation  = errors.New("hex string byte size violation")
	ErrInvalidUUID           = errors.New("invalid uuid")
	errUnknownGuardViolation = errors.New("guard violation")
)

var sentinels = map[Kind]error{
	KindNullArgument:         ErrNullArgument,
	KindEmptyArgument:        ErrEmptyArgument,
	KindBlankString:          ErrBlankString,
	KindOutOfRange:           ErrOutOfRange,
	KindInvalidBounds:        ErrInvalidBounds,
	KindNotDefinedEnumValue:  ErrNotDefinedEnumValue,
	KindNotInWhitelist:       ErrNotInWhitelist,
	KindPatternMismatch:      ErrPatternMismatch,
	KindInvalidPattern:       ErrInvalidPattern,
	KindInvalidHexString:     ErrInvalidHexString,
	KindHexByteSizeViolation: ErrHexByteSizeViolation,
	KindInvalidUUID:          ErrInvalidUUID,
}

// Error is returned by every guard when its check fails.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Param is the name of the offending parameter.
	Param string
	// Message is the rendered, human-readable description.
	Message string
	// Values holds the concrete values substituted into Message, keyed by role
	// ("value", "lower_bound", "whitelist", ...).
	Values map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the sentinel error of the failure kind.
func (e *Error) Unwrap() error {
	if err, ok := sentinels[e.Kind]; ok {
		return err
	}
	return errUnknownGuardViolation
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", string(e.Kind)),
		slog.String("param", e.Param),
		slog.String("message", e.Message),
	)
}

// KindOf returns the kind of the first guard failure in err's chain,
// or an empty Kind if there is none.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return ""
}

// ParamOf returns the parameter name of the first guard failure in err's chain.
func ParamOf(err error) string {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Param
	}
	return ""
}

// Must returns value or panics with err. It lets guards be used inline:
//
//	port := guard.Must(guard.CheckIsInsideRange(p, 1, 65535, "port"))
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func newError(kind Kind, param, message string, values map[string]any) *Error {
	return &Error{
		Kind:    kind,
		Param:   param,
		Message: message,
		Values:  values,
	}
}
