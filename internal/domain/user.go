package domain

import (
	"strings"
	"time"
)

// User is an operator of the system. DocumentID (national id) is the login key.
type User struct {
	ID             int64
	DocumentID     string
	Email          string
	FirstName      string
	LastName       string
	Role           Role
	IsActive       bool
	IsTempPassword bool
	PasswordHash   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns "First Last", falling back to the document id.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.DocumentID
	}
	return name
}

// Identity is the authenticated caller carried through a request.
type Identity struct {
	UserID int64
	Role   Role
}
