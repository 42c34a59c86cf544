package guard_test

import (
	"errors"
	"iter"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard"
)

func TestCheckIsNotNullOrEmpty(t *testing.T) {
	t.Run("nil slice", func(t *testing.T) {
		var s []string
		_, err := guard.CheckIsNotNullOrEmpty(s, "paramA")
		require.Error(t, err)
		assert.True(t, errors.Is(err, guard.ErrNullArgument))
		assert.Equal(t, "paramA", guard.ParamOf(err))
		assert.Equal(t, "collection paramA can't be nil or empty", err.Error())
	})

	t.Run("empty slice", func(t *testing.T) {
		_, err := guard.CheckIsNotNullOrEmpty([]int{}, "paramB")
		require.Error(t, err)
		assert.True(t, errors.Is(err, guard.ErrEmptyArgument))
		assert.Equal(t, "paramB", guard.ParamOf(err))
	})

	t.Run("returns non-empty slice", func(t *testing.T) {
		in := []int{1, 2, 3}
		got, err := guard.CheckIsNotNullOrEmpty(in, "items")
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("keeps named slice type", func(t *testing.T) {
		type ids []int64
		got, err := guard.CheckIsNotNullOrEmpty(ids{7}, "ids")
		require.NoError(t, err)
		assert.IsType(t, ids{}, got)
	})
}

func TestCheckMapIsNotNullOrEmpty(t *testing.T) {
	var m map[string]int
	_, err := guard.CheckMapIsNotNullOrEmpty(m, "m")
	assert.True(t, errors.Is(err, guard.ErrNullArgument))

	_, err = guard.CheckMapIsNotNullOrEmpty(map[string]int{}, "m")
	assert.True(t, errors.Is(err, guard.ErrEmptyArgument))

	in := map[string]int{"a": 1}
	got, err := guard.CheckMapIsNotNullOrEmpty(in, "m")
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestCheckSeqIsNotNullOrEmpty(t *testing.T) {
	t.Run("nil sequence", func(t *testing.T) {
		var seq iter.Seq[int]
		_, err := guard.CheckSeqIsNotNullOrEmpty(seq, "seq")
		assert.True(t, errors.Is(err, guard.ErrNullArgument))
	})

	t.Run("empty sequence", func(t *testing.T) {
		_, err := guard.CheckSeqIsNotNullOrEmpty(slices.Values([]int{}), "seq")
		assert.True(t, errors.Is(err, guard.ErrEmptyArgument))
	})

	t.Run("pulls only the first element", func(t *testing.T) {
		pulled := 0
		var seq iter.Seq[int] = func(yield func(int) bool) {
			for i := range 10 {
				pulled++
				if !yield(i) {
					return
				}
			}
		}

		got, err := guard.CheckSeqIsNotNullOrEmpty(seq, "seq")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, 1, pulled)
	})

	t.Run("returns the same sequence", func(t *testing.T) {
		got, err := guard.CheckSeqIsNotNullOrEmpty(maps.Keys(map[string]int{"a": 1}), "keys")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, slices.Collect(got))
	})
}
