package guard

import (
	"fmt"
	"reflect"
	"slices"
)

// Enum is implemented by named types that stand for a closed set of values.
// Values lists every member in declaration order.
//
//	type Status int
//
//	const (
//		StatusActive Status = iota + 1
//		StatusSuspended
//	)
//
//	func (Status) Values() []Status { return []Status{StatusActive, StatusSuspended} }
type Enum[E any] interface {
	comparable
	Values() []E
}

// CheckIsNotNull returns value unless it is nil. Nil interfaces and nil
// pointers, maps, slices, channels and functions are reported as ErrNullArgument;
// types that cannot be nil always pass.
func CheckIsNotNull[T any](value T, name string) (T, error) {
	if isNil(value) {
		return value, nullError(name)
	}
	return value, nil
}

// CheckIsDefinedInEnum returns value if it is one of the members listed by its Values method.
func CheckIsDefinedInEnum[E Enum[E]](value E, name string) (E, error) {
	defined := value.Values()
	if slices.Contains(defined, value) {
		return value, nil
	}

	typeName := enumTypeName(reflect.TypeFor[E]())
	return value, newError(KindNotDefinedEnumValue, name,
		fmt.Sprintf("%s value '%s' is not a defined enum value of type %s. Defined values are: %s",
			name, render(value), typeName, joinValues(defined)),
		map[string]any{
			"value":          value,
			"enum_type":      typeName,
			"defined_values": defined,
		},
	)
}

// CheckIsInWhitelist returns value if it equals at least one whitelist entry.
// A nil value matches a nil entry.
func CheckIsInWhitelist[T comparable](value T, whitelist []T, name string) (T, error) {
	if slices.Contains(whitelist, value) {
		return value, nil
	}
	return value, newError(KindNotInWhitelist, name,
		fmt.Sprintf("%s value of '%s' is not a valid value. Valid values are: %s",
			name, render(value), joinValues(whitelist)),
		map[string]any{
			"value":     value,
			"whitelist": whitelist,
		},
	)
}

func nullError(name string) error {
	return newError(KindNullArgument, name, fmt.Sprintf("%s can't be nil", name), nil)
}

// enumTypeName returns the import-path qualified name of t.
func enumTypeName(t reflect.Type) string {
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
