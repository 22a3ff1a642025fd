// Package entity contains the core business objects of the client.
package entity

import "strings"

// Role represents the kind of account signed in to the app.
type Role string

const (
	// RoleCandidate indicates a job-seeking candidate account.
	RoleCandidate Role = "candidate"
	// RoleEmployer indicates an employer or recruiter account.
	RoleEmployer Role = "employer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCandidate, RoleEmployer:
		return true
	default:
		return false
	}
}

// ParseRole converts a server-provided role string to a Role.
// Unknown or empty values default to RoleCandidate, matching the
// candidate-first behaviour of the app.
func ParseRole(s string) Role {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}

	return RoleCandidate
}
