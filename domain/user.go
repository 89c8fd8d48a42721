package domain

import "time"

// Role gates which routes and admin views a user may reach. The core
// logic trusts the caller was already authorized.
type Role string

const (
	RoleUser       Role = "User"
	RoleAgent      Role = "Agent"
	RoleSuperAdmin Role = "SuperAdmin"
)

// User represents an authenticated identity in the platform.
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email,omitempty"`
	DisplayName       string    `json:"display_name,omitempty"`
	Role              Role      `json:"role"`
	BusinessProfileID string    `json:"business_profile_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleSuperAdmin
}
