package models

import "time"

// User is a registered portal account.
type User struct {
	// ID is the database identifier. It is also the "id" claim of issued tokens.
	ID int64 `json:"id"`

	// Username is unique and compared case-sensitively.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// DisplayName defaults to Username when not supplied at registration.
	DisplayName string `json:"displayName"`

	// IsAdmin grants access to every mutating content endpoint.
	IsAdmin bool `json:"isAdmin"`

	// CreatedAt is zero for users rebuilt from token claims and then omitted.
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the register request body.
type Registration struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}
