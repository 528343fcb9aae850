// Package entity holds the fields and contracts shared by every ledger record.
package entity

import (
	"context"
	"time"

	"shopledger/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without storage access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Identifiable is anything a Collection can store.
type Identifiable interface {
	GetID() id.ID
}

// BaseEntity contains common fields for all top-level records.
type BaseEntity struct {
	// ID is assigned once at add-time (UUIDv7)
	ID id.ID `json:"id"`

	// CreatedAt is stamped once at add-time
	CreatedAt time.Time `json:"createdAt"`
}

// NewBaseEntity creates a new BaseEntity with generated ID.
func NewBaseEntity(now time.Time) BaseEntity {
	return BaseEntity{
		ID:        id.New(),
		CreatedAt: now,
	}
}

// GetID returns the entity ID.
func (b BaseEntity) GetID() id.ID {
	return b.ID
}

// Audited extends BaseEntity with a modification timestamp.
type Audited struct {
	BaseEntity

	// UpdatedAt is bumped on every mutation
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAudited creates a new Audited entity with both timestamps set to now.
func NewAudited(now time.Time) Audited {
	return Audited{
		BaseEntity: NewBaseEntity(now),
		UpdatedAt:  now,
	}
}

// Touch updates the UpdatedAt timestamp.
func (a *Audited) Touch(now time.Time) {
	a.UpdatedAt = now
}
