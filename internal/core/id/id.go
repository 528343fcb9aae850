// Package id provides UUIDv7 generation for all ledger entities.
// UUIDv7 is time-ordered and random in its tail, so an identity is never
// handed out twice, even after the entity that carried it is deleted.
package id

import (
	"github.com/google/uuid"
)

// ID is a type alias for UUID, used across all entities.
type ID = uuid.UUID

// New generates a new UUIDv7 (time-ordered UUID).
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to V4 if V7 fails (should never happen)
		return uuid.New()
	}
	return id
}

// Parse converts string to ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse converts string to ID, panics on error.
// Use only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns zero-value UUID.
func Nil() ID {
	return uuid.Nil
}

// IsNil checks if ID is zero-value.
func IsNil(id ID) bool {
	return id == uuid.Nil
}

// Ref is an optional, non-owning reference to another entity.
// A nil Ref means "no reference"; a non-nil Ref may dangle.
type Ref = *ID

// NewRef returns a reference to v, or nil for the zero ID.
func NewRef(v ID) Ref {
	if IsNil(v) {
		return nil
	}
	return &v
}

// RefEquals reports whether r points at v.
func RefEquals(r Ref, v ID) bool {
	return r != nil && *r == v
}
