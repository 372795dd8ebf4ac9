// Package uuid generates the opaque identifiers assigned to transactions and savings goals.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7 string. UUIDv7 values are ordered by creation
// time, so goals created later compare greater.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the clock-based generator fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Generator produces identifiers. Services take a Generator so tests can
// supply deterministic ids.
type Generator func() string

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
