// Package models defines the data transfer objects exchanged with the
// backend auth API.
package models

// User is the server-side account record as returned by the profile and
// auth endpoints.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Avatar    string `json:"avatar,omitempty"`
	IsVip     bool   `json:"isVip"`
	CreatedAt string `json:"createdAt"`
}

// Credentials is the login request payload. Transient: never persisted and
// not retained after the call completes.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the account creation payload. Transient like Credentials.
type RegisterData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is the atomic result of a successful login or registration.
// User and Token must always be applied together.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
