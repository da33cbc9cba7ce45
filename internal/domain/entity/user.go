// Package entity contains the core business objects of the clinic,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in. It carries identity and credentials only;
// what the account may do is decided by its Profile.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Profile      *Profile // nil when the account has no role assigned
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile assigns a role to a User. A user has at most one.
type Profile struct {
	UserID uuid.UUID
	Role   Role
	Phone  *string
}

// Principal is the authenticated caller of an operation. Role is resolved once
// per request and passed down; operations never look it up again.
type Principal struct {
	UserID    uuid.UUID
	Username  string
	Role      Role
	SessionID uuid.UUID
}
