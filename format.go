package guard

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

const (
	truncateSymbol    = "..."
	truncateMaxLength = 250 - len(truncateSymbol)

	// emptyPlaceholder is rendered instead of an empty hex value.
	emptyPlaceholder = "<EMPTY>"
)

// truncate caps s at 250 runes, replacing the tail with "...".
func truncate(s string) string {
	if utf8.RuneCountInString(s) <= truncateMaxLength+len(truncateSymbol) {
		return s
	}

	n := 0
	for i := range s {
		if n == truncateMaxLength {
			return s[:i] + truncateSymbol
		}
		n++
	}
	return s
}

// render formats v for an error message. Nil values render as an empty
// string and pointers render as the value they point to.
func render(v any) string {
	if isNil(v) {
		return ""
	}
	switch v.(type) {
	case fmt.Stringer, error:
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
			return render(rv.Elem().Interface())
		}
	}
	return truncate(fmt.Sprint(v))
}

// renderHex formats a hex value for an error message.
func renderHex(s string) string {
	if s == "" {
		return emptyPlaceholder
	}
	return truncate(s)
}

// joinValues renders values as "a", "a and b" or "a, b and c".
func joinValues[T any](values []T) string {
	var sb strings.Builder
	for i, v := range values {
		switch {
		case i == 0:
		case i == len(values)-1:
			sb.WriteString(" and ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(render(v))
	}
	return sb.String()
}

// isNil reports whether v is nil or a nil pointer, map, slice, chan, func or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
