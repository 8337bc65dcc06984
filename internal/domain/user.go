package domain

import (
	"fmt"
	"time"
)

// Role is the closed set of authorization categories a user can hold.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleSales   Role = "SALES"
	RoleUser    Role = "USER"
)

// ParseRole maps a raw string onto the closed enum. Anything outside the
// four known roles is rejected rather than downgraded.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleManager, RoleSales, RoleUser:
		return Role(value), nil
	}
	return "", fmt.Errorf("unknown role %q", value)
}

// User is the principal record used for authentication and token claims.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
