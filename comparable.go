package guard

import (
	"cmp"
	"fmt"
)

// CheckIsInsideRange returns value if it lies inside the inclusive range [lower, upper].
// A lower bound greater than the upper bound is reported as ErrInvalidBounds
// before value is inspected.
func CheckIsInsideRange[T cmp.Ordered](value, lower, upper T, name string) (T, error) {
	return CheckIsInsideRangeFunc(value, lower, upper, cmp.Compare[T], name)
}

// CheckIsGreaterThan returns value if it is strictly greater than lower.
func CheckIsGreaterThan[T cmp.Ordered](value, lower T, name string) (T, error) {
	return CheckIsGreaterThanFunc(value, lower, cmp.Compare[T], name)
}

// CheckIsEqualOrGreaterThan returns value if it is greater than or equal to lower.
func CheckIsEqualOrGreaterThan[T cmp.Ordered](value, lower T, name string) (T, error) {
	return CheckIsEqualOrGreaterThanFunc(value, lower, cmp.Compare[T], name)
}

// CheckIsLessThan returns value if it is strictly less than upper.
func CheckIsLessThan[T cmp.Ordered](value, upper T, name string) (T, error) {
	return CheckIsLessThanFunc(value, upper, cmp.Compare[T], name)
}

// CheckIsEqualOrLessThan returns value if it is less than or equal to upper.
func CheckIsEqualOrLessThan[T cmp.Ordered](value, upper T, name string) (T, error) {
	return CheckIsEqualOrLessThanFunc(value, upper, cmp.Compare[T], name)
}

// CheckIsInsideRangeFunc is CheckIsInsideRange for types ordered by a comparison
// function, e.g. time.Time.Compare.
func CheckIsInsideRangeFunc[T any](value, lower, upper T, compare func(a, b T) int, name string) (T, error) {
	if err := FailIfGreaterThanFunc(lower, upper, compare, "lowerBound", "upperBound"); err != nil {
		return value, err
	}
	if compare(value, lower) < 0 || compare(value, upper) > 0 {
		return value, newError(KindOutOfRange, name,
			fmt.Sprintf("%s should be inside range [%s, %s] but its value was '%s'",
				name, render(lower), render(upper), render(value)),
			map[string]any{
				"value":       value,
				"lower_bound": lower,
				"upper_bound": upper,
			},
		)
	}
	return value, nil
}

// CheckIsGreaterThanFunc is CheckIsGreaterThan for types ordered by a comparison function.
func CheckIsGreaterThanFunc[T any](value, lower T, compare func(a, b T) int, name string) (T, error) {
	if compare(value, lower) <= 0 {
		return value, boundError("greater than", "lower_bound", value, lower, name)
	}
	return value, nil
}

// CheckIsEqualOrGreaterThanFunc is CheckIsEqualOrGreaterThan for types ordered by a comparison function.
func CheckIsEqualOrGreaterThanFunc[T any](value, lower T, compare func(a, b T) int, name string) (T, error) {
	if compare(value, lower) < 0 {
		return value, boundError("equal or greater than", "lower_bound", value, lower, name)
	}
	return value, nil
}

// CheckIsLessThanFunc is CheckIsLessThan for types ordered by a comparison function.
func CheckIsLessThanFunc[T any](value, upper T, compare func(a, b T) int, name string) (T, error) {
	if compare(value, upper) >= 0 {
		return value, boundError("less than", "upper_bound", value, upper, name)
	}
	return value, nil
}

// CheckIsEqualOrLessThanFunc is CheckIsEqualOrLessThan for types ordered by a comparison function.
func CheckIsEqualOrLessThanFunc[T any](value, upper T, compare func(a, b T) int, name string) (T, error) {
	if compare(value, upper) > 0 {
		return value, boundError("equal or less than", "upper_bound", value, upper, name)
	}
	return value, nil
}

// CheckIsNotZero returns value unless it equals the zero value of its type.
func CheckIsNotZero[T comparable](value T, name string) (T, error) {
	var zero T
	if value == zero {
		return value, newError(KindEmptyArgument, name,
			fmt.Sprintf("%s can't be zero value", name),
			map[string]any{"value": value},
		)
	}
	return value, nil
}

func boundError[T any](relation, boundKey string, value, bound T, name string) error {
	return newError(KindOutOfRange, name,
		fmt.Sprintf("%s should be %s %s but its value was '%s'",
			name, relation, render(bound), render(value)),
		map[string]any{
			"value":  value,
			boundKey: bound,
		},
	)
}
