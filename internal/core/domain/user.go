package domain

import "time"

// AdminRoleID is the role whose members bypass all permission checks.
// Seeded by migrations and relied on by the authorization layer.
const AdminRoleID int64 = 1

// User represents an application user in the domain.
type User struct {
	UserID   int64  `json:"userID"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	// PasswordHash is the bcrypt verifier. Empty for legacy seed users that
	// still authenticate against the shared fallback password.
	PasswordHash string    `json:"-"`
	RoleID       int64     `json:"roleID"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Role is a named capability bucket. A user has exactly one role.
type Role struct {
	RoleID      int64  `json:"roleID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Permission is a named capability, e.g. "journal.write".
type Permission struct {
	PermissionID int64  `json:"permissionID"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
}
