package guard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard"
)

func TestFailIfLessThan(t *testing.T) {
	t.Run("passes when x is greater", func(t *testing.T) {
		assert.NoError(t, guard.FailIfLessThan(5, 3, "x", "y"))
	})

	t.Run("passes when x equals y", func(t *testing.T) {
		assert.NoError(t, guard.FailIfLessThan(3, 3, "x", "y"))
	})

	t.Run("fails when x is less", func(t *testing.T) {
		err := guard.FailIfLessThan(2, 3, "paramA", "paramB")
		require.Error(t, err)
		assert.True(t, errors.Is(err, guard.ErrInvalidBounds))
		assert.Equal(t, "paramA", guard.ParamOf(err))
		assert.Equal(t, "paramA can't be less than paramB. Value of paramA was '2' and value of paramB was '3'", err.Error())
	})
}

func TestFailIfEqualOrLessThan(t *testing.T) {
	t.Run("passes when x is greater", func(t *testing.T) {
		assert.NoError(t, guard.FailIfEqualOrLessThan(5, 3, "x", "y"))
	})

	t.Run("fails when x equals y", func(t *testing.T) {
		err := guard.FailIfEqualOrLessThan(3, 3, "x", "y")
		require.Error(t, err)
		assert.Equal(t, guard.KindInvalidBounds, guard.KindOf(err))
		assert.Contains(t, err.Error(), "x can't be equal or less than y")
	})

	t.Run("fails when x is less", func(t *testing.T) {
		assert.Error(t, guard.FailIfEqualOrLessThan(2.5, 3.0, "x", "y"))
	})
}

func TestFailIfGreaterThan(t *testing.T) {
	t.Run("passes when x is less", func(t *testing.T) {
		assert.NoError(t, guard.FailIfGreaterThan("a", "b", "x", "y"))
	})

	t.Run("passes when x equals y", func(t *testing.T) {
		assert.NoError(t, guard.FailIfGreaterThan(uint8(7), uint8(7), "x", "y"))
	})

	t.Run("fails when x is greater", func(t *testing.T) {
		err := guard.FailIfGreaterThan(10, 1, "lowerBound", "upperBound")
		require.Error(t, err)
		assert.Equal(t, "lowerBound can't be greater than upperBound. Value of lowerBound was '10' and value of upperBound was '1'", err.Error())
	})
}

func TestFailIfEqualOrGreaterThan(t *testing.T) {
	t.Run("passes when x is less", func(t *testing.T) {
		assert.NoError(t, guard.FailIfEqualOrGreaterThan(int64(-1), int64(0), "x", "y"))
	})

	t.Run("fails when x equals y", func(t *testing.T) {
		err := guard.FailIfEqualOrGreaterThan(0, 0, "x", "y")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "x can't be equal or greater than y")
	})

	t.Run("fails when x is greater", func(t *testing.T) {
		assert.Error(t, guard.FailIfEqualOrGreaterThan(1, 0, "x", "y"))
	})
}

func TestFailIfFuncVariants(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	assert.NoError(t, guard.FailIfGreaterThanFunc(early, late, time.Time.Compare, "start", "end"))
	assert.NoError(t, guard.FailIfLessThanFunc(late, early, time.Time.Compare, "end", "start"))
	assert.Error(t, guard.FailIfEqualOrLessThanFunc(early, early, time.Time.Compare, "start", "end"))
	assert.Error(t, guard.FailIfEqualOrGreaterThanFunc(early, early, time.Time.Compare, "start", "end"))

	err := guard.FailIfGreaterThanFunc(late, early, time.Time.Compare, "start", "end")
	require.Error(t, err)
	assert.True(t, errors.Is(err, guard.ErrInvalidBounds))
	assert.Equal(t, "start", guard.ParamOf(err))
}
