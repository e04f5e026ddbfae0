package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status enumerates user account states.
type Status string

const (
	// StatusActive is a fully enabled account.
	StatusActive Status = "active"
	// StatusPassive is a disabled account.
	StatusPassive Status = "passive"
	// StatusPending is an account awaiting activation. New accounts start here.
	StatusPending Status = "pending"
)

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusPassive, StatusPending:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown user status %q", s)
	}
}

// Valid reports whether the status is one of the defined variants.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// User represents a stored user account.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Username     string
	PasswordHash []byte
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserFilter narrows List results. Nil fields match everything.
type UserFilter struct {
	Email    *string
	Username *string
	Status   *Status
}

// UserUpdate carries a partial update. Nil fields keep the stored value.
type UserUpdate struct {
	Name     *string
	Username *string
	Status   *Status
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Username == nil && u.Status == nil
}

// UserStore defines persistence operations for users. Email and username
// uniqueness is enforced by the store, not by callers.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	UpdateFields(ctx context.Context, id uuid.UUID, update UserUpdate) (User, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
