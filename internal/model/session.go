// Package model defines the data structures used throughout the application.
package model

// Role gates which dashboard and navigation the front end shows.
// It is a plain string (not an int enum) because it round-trips through JSON
// and the persisted session slot — a string survives both without a codec.
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleAdmin:
		return true
	}
	return false
}

// Session is the record representing the currently authenticated identity.
//
// A session exists if and only if someone is logged in — the session store
// represents "not logged in" as the absence of a Session, never as a Session
// with empty fields. The struct is what gets serialized into the durable
// storage slot, so field changes here are a persistence format change.
//
// WHY Avatar string (not *string)?
// The avatar reference is optional. We use the empty string as "no avatar"
// rather than a nullable pointer — simpler to work with and safe to display.
type Session struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}
