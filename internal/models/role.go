package models

import "fmt"

// Role is the closed set of account roles. Anything else is rejected at the
// boundary instead of being compared deep inside the authorization checks.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
