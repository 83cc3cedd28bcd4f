package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record behind the identity service. The rest of the
// system only ever consumes its ID; contact details on bookings are
// snapshots taken at submission time, not live references.
type User struct {
	id           uuid.UUID
	email        Email
	displayName  string
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
}

func NewUser(email Email, displayName, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		displayName:  displayName,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
