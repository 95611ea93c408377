package utils

import "github.com/google/uuid"

// ToUUID parses a path/query parameter, returning uuid.Nil when malformed.
// Lookups with uuid.Nil simply find nothing.
func ToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
