package entity

import (
	"time"
)

// User is the aggregate root for the credential domain.
// Passwords are stored as bcrypt hashes in Password field.
// Username and Email are each globally unique; there is no update or delete
// path for users once created.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}
