package guard

import (
	"fmt"

	"github.com/google/uuid"
)

// CheckIsNotNilUUID returns value unless it is uuid.Nil.
func CheckIsNotNilUUID(value uuid.UUID, name string) (uuid.UUID, error) {
	if value == uuid.Nil {
		return value, newError(KindEmptyArgument, name,
			fmt.Sprintf("%s can't be nil UUID", name),
			map[string]any{"value": value},
		)
	}
	return value, nil
}

// CheckIsUUIDString returns value if uuid.Parse accepts it.
func CheckIsUUIDString(value, name string) (string, error) {
	if _, err := uuid.Parse(value); err != nil {
		return value, newError(KindInvalidUUID, name,
			fmt.Sprintf("%s does not contain a valid UUID its value was '%s'", name, truncate(value)),
			map[string]any{"value": value},
		)
	}
	return value, nil
}
