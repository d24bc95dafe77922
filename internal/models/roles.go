package models

import (
	"fmt"
	"strings"
)

// UserRole is the closed set of account kinds.
type UserRole string

const (
	RoleWorker   UserRole = "worker"
	RoleEmployer UserRole = "employer"
)

// ParseUserRole converts a raw string to a UserRole, returning an error for
// unknown values.
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(strings.ToLower(strings.TrimSpace(s)))
	switch role {
	case RoleWorker, RoleEmployer:
		return role, nil
	}
	return "", fmt.Errorf("unknown user role %q", s)
}

// Valid reports whether r is one of the declared roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleWorker, RoleEmployer:
		return true
	}
	return false
}
