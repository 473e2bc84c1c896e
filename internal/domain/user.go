package domain

import (
	"errors"
	"time"
)

// User represents a back-office user
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	Role           Role
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Role represents a user's access level
type Role string

const (
	// RoleAdmin has full access, including user administration and cut deletion
	RoleAdmin Role = "admin"

	// RoleOperator can create and edit cuts, but cannot manage users
	RoleOperator Role = "operator"

	// RoleViewer can only view cuts and reports, no mutations
	RoleViewer Role = "viewer"
)

// Valid roles
var validRoles = map[Role]bool{
	RoleAdmin:    true,
	RoleOperator: true,
	RoleViewer:   true,
}

// IsValid checks if the role is a valid role
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanEditCuts checks if the role can create and edit cuts
func (r Role) CanEditCuts() bool {
	return r == RoleAdmin || r == RoleOperator
}

// CanDeleteCuts checks if the role can delete cuts
func (r Role) CanDeleteCuts() bool {
	return r == RoleAdmin
}

// CanManageUsers checks if the role can administer users
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// CanViewAll checks if the role can view all resources
func (r Role) CanViewAll() bool {
	// All authenticated users can view
	return r.IsValid()
}

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
