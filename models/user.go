package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier used during authentication
	// and carried as the "sub" claim of issued tokens.
	Username string `json:"username"`

	// Email is the user's contact address supplied at registration.
	Email string `json:"email"`

	// FullName is the optional display name of the user.
	FullName string `json:"full_name,omitempty"`

	// Password carries the plaintext password on inbound registration
	// requests only. It is cleared before any response is written and is
	// never persisted.
	Password string `json:"password,omitempty"`

	// HashedPassword stores the bcrypt digest of the user's password.
	// It is never exposed via JSON.
	HashedPassword string `json:"-"`

	// Disabled marks an account that must not pass the authorization gate.
	// No HTTP endpoint mutates this flag; it is flipped administratively
	// in the store.
	Disabled bool `json:"disabled"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
