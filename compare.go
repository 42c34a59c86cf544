package guard

import (
	"cmp"
	"fmt"
)

// FailIfLessThan returns an error if x is less than y.
func FailIfLessThan[T cmp.Ordered](x, y T, xName, yName string) error {
	return FailIfLessThanFunc(x, y, cmp.Compare[T], xName, yName)
}

// FailIfEqualOrLessThan returns an error if x is equal to or less than y.
func FailIfEqualOrLessThan[T cmp.Ordered](x, y T, xName, yName string) error {
	return FailIfEqualOrLessThanFunc(x, y, cmp.Compare[T], xName, yName)
}

// FailIfGreaterThan returns an error if x is greater than y.
func FailIfGreaterThan[T cmp.Ordered](x, y T, xName, yName string) error {
	return FailIfGreaterThanFunc(x, y, cmp.Compare[T], xName, yName)
}

// FailIfEqualOrGreaterThan returns an error if x is equal to or greater than y.
func FailIfEqualOrGreaterThan[T cmp.Ordered](x, y T, xName, yName string) error {
	return FailIfEqualOrGreaterThanFunc(x, y, cmp.Compare[T], xName, yName)
}

// FailIfLessThanFunc is FailIfLessThan for types ordered by a comparison function.
// compare must return a negative number when a < b, zero when a == b and a
// positive number when a > b, like cmp.Compare or time.Time.Compare.
func FailIfLessThanFunc[T any](x, y T, compare func(a, b T) int, xName, yName string) error {
	if compare(x, y) < 0 {
		return pairError("less than", x, y, xName, yName)
	}
	return nil
}

// FailIfEqualOrLessThanFunc is FailIfEqualOrLessThan for types ordered by a comparison function.
func FailIfEqualOrLessThanFunc[T any](x, y T, compare func(a, b T) int, xName, yName string) error {
	if compare(x, y) <= 0 {
		return pairError("equal or less than", x, y, xName, yName)
	}
	return nil
}

// FailIfGreaterThanFunc is FailIfGreaterThan for types ordered by a comparison function.
func FailIfGreaterThanFunc[T any](x, y T, compare func(a, b T) int, xName, yName string) error {
	if compare(x, y) > 0 {
		return pairError("greater than", x, y, xName, yName)
	}
	return nil
}

// FailIfEqualOrGreaterThanFunc is FailIfEqualOrGreaterThan for types ordered by a comparison function.
func FailIfEqualOrGreaterThanFunc[T any](x, y T, compare func(a, b T) int, xName, yName string) error {
	if compare(x, y) >= 0 {
		return pairError("equal or greater than", x, y, xName, yName)
	}
	return nil
}

func pairError[T any](relation string, x, y T, xName, yName string) error {
	return newError(KindInvalidBounds, xName,
		fmt.Sprintf("%s can't be %s %s. Value of %s was '%s' and value of %s was '%s'",
			xName, relation, yName, xName, render(x), yName, render(y)),
		map[string]any{
			"x":      x,
			"y":      y,
			"x_name": xName,
			"y_name": yName,
		},
	)
}
