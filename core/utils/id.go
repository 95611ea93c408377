package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short opaque identifier. Used for time-slot ids and
// kiosk page references, stable for the editing session only.
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 9)
	if err != nil {
		return ""
	}
	return id
}

// GenerateSyntheticSlotID builds the deterministic id assigned to slots
// imported from the wire format, which carries no ids of its own.
func GenerateSyntheticSlotID(kind string, dayIndex, slotIndex int) string {
	return fmt.Sprintf("%s-%d-%d", kind, dayIndex, slotIndex)
}
