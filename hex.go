package guard

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

const hexPrefix = "0x"

// HexOption configures the byte-size bounds of CheckIsHexString.
type HexOption func(*hexBounds)

type hexBounds struct {
	min int
	max int
}

// WithMinByteSize sets the minimum number of bytes the hex string must encode. Default 0.
func WithMinByteSize(n int) HexOption {
	return func(b *hexBounds) { b.min = n }
}

// WithMaxByteSize sets the maximum number of bytes the hex string may encode.
// Default math.MaxInt, i.e. unbounded.
func WithMaxByteSize(n int) HexOption {
	return func(b *hexBounds) { b.max = n }
}

func newHexBounds(opts []HexOption) hexBounds {
	b := hexBounds{min: 0, max: math.MaxInt}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b hexBounds) validate() error {
	if _, err := CheckIsEqualOrGreaterThan(b.min, 0, "minByteSize"); err != nil {
		return err
	}
	return FailIfGreaterThan(b.min, b.max, "minByteSize", "maxByteSize")
}

// CheckIsHexString returns value if it is a hex string, optionally prefixed
// with a lowercase "0x", made of digit pairs encoding between min and max bytes
// (inclusive). The empty string encodes zero bytes.
//
// Bound options are validated before value is inspected: a negative minimum is
// reported as ErrOutOfRange and a minimum above the maximum as ErrInvalidBounds.
func CheckIsHexString(value, name string, opts ...HexOption) (string, error) {
	b := newHexBounds(opts)
	if err := b.validate(); err != nil {
		return value, err
	}
	if _, err := checkHex(value, name, b); err != nil {
		return value, err
	}
	return value, nil
}

// CheckIsHexStringPtr is CheckIsHexString for optional strings.
func CheckIsHexStringPtr(value *string, name string, opts ...HexOption) (*string, error) {
	b := newHexBounds(opts)
	if err := b.validate(); err != nil {
		return value, err
	}
	if value == nil {
		return value, nullError(name)
	}
	if _, err := checkHex(*value, name, b); err != nil {
		return value, err
	}
	return value, nil
}

// DecodeHexString checks value like CheckIsHexString and returns the bytes it encodes.
func DecodeHexString(value, name string, opts ...HexOption) ([]byte, error) {
	b := newHexBounds(opts)
	if err := b.validate(); err != nil {
		return nil, err
	}
	digits, err := checkHex(value, name, b)
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(digits)
}

// checkHex validates value against b and returns its digits without the prefix.
func checkHex(value, name string, b hexBounds) (string, error) {
	digits := strings.TrimPrefix(value, hexPrefix)
	if !isHexDigits(digits) {
		return "", newError(KindInvalidHexString, name,
			fmt.Sprintf("%s does not contain a valid hex string its value was '%s'", name, renderHex(value)),
			map[string]any{"value": value},
		)
	}

	size := len(digits) / 2
	if size >= b.min && size <= b.max {
		return digits, nil
	}

	values := map[string]any{
		"value":         value,
		"byte_size":     size,
		"min_byte_size": b.min,
		"max_byte_size": b.max,
	}
	var msg string
	switch {
	case size < b.min && b.max == math.MaxInt:
		msg = fmt.Sprintf("%s hex string value %s contains %d bytes which is less than min byte size requirement of %d",
			name, renderHex(value), size, b.min)
	case size > b.max && b.min == 0:
		msg = fmt.Sprintf("%s hex string value %s contains %d bytes which is greater than max byte size requirement of %d",
			name, renderHex(value), size, b.max)
	default:
		msg = fmt.Sprintf("%s hex string value %s contains %d bytes which is not inside valid range of [%d, %d]",
			name, renderHex(value), size, b.min, b.max)
	}
	return "", newError(KindHexByteSizeViolation, name, msg, values)
}

// isHexDigits reports whether s is an even-length run of hex digits.
func isHexDigits(s string) bool {
	if len(s)%2 != 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
