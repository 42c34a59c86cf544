package guard_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard"
)

func TestCheckIsNotNilUUID(t *testing.T) {
	id := uuid.New()
	got, err := guard.CheckIsNotNilUUID(id, "userID")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = guard.CheckIsNotNilUUID(uuid.Nil, "userID")
	require.Error(t, err)
	assert.True(t, errors.Is(err, guard.ErrEmptyArgument))
	assert.Equal(t, "userID can't be nil UUID", err.Error())
}

func TestCheckIsUUIDString(t *testing.T) {
	valid := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	got, err := guard.CheckIsUUIDString(valid, "id")
	require.NoError(t, err)
	assert.Equal(t, valid, got)

	for _, v := range []string{"", "not-a-uuid", "6ba7b810-9dad-11d1-80b4"} {
		_, err := guard.CheckIsUUIDString(v, "id")
		require.Error(t, err, "value %q", v)
		assert.True(t, errors.Is(err, guard.ErrInvalidUUID))
		assert.Equal(t, "id", guard.ParamOf(err))
	}
}
