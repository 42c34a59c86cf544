package guard

import (
	"fmt"
	"iter"
)

// CheckIsNotNullOrEmpty returns value unless the slice is nil or has no elements.
func CheckIsNotNullOrEmpty[S ~[]E, E any](value S, name string) (S, error) {
	if value == nil {
		return value, collectionError(KindNullArgument, name)
	}
	if len(value) == 0 {
		return value, collectionError(KindEmptyArgument, name)
	}
	return value, nil
}

// CheckMapIsNotNullOrEmpty returns value unless the map is nil or has no entries.
func CheckMapIsNotNullOrEmpty[M ~map[K]V, K comparable, V any](value M, name string) (M, error) {
	if value == nil {
		return value, collectionError(KindNullArgument, name)
	}
	if len(value) == 0 {
		return value, collectionError(KindEmptyArgument, name)
	}
	return value, nil
}

// CheckSeqIsNotNullOrEmpty returns seq unless it is nil or yields no elements.
//
// The sequence is ranged only until it produces its first element. A sequence
// that can be ranged a single time has lost that element afterwards; collect it
// first (slices.Collect) and use CheckIsNotNullOrEmpty instead.
func CheckSeqIsNotNullOrEmpty[E any](seq iter.Seq[E], name string) (iter.Seq[E], error) {
	if seq == nil {
		return seq, collectionError(KindNullArgument, name)
	}
	for range seq {
		return seq, nil
	}
	return seq, collectionError(KindEmptyArgument, name)
}

func collectionError(kind Kind, name string) error {
	return newError(kind, name, fmt.Sprintf("collection %s can't be nil or empty", name), nil)
}
