package entity

import (
	"github.com/gofrs/uuid/v5"
)

// User is the authenticated platform user, as resolved by the auth service.
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      string
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Represent returns the display name for the user, falling back to the email
// when no name is set.
func (u User) Represent() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}
