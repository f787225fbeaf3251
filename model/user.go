package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Role is a user's permission level.
type Role string

const (
	// RoleAdmin has full access, including user and settings management.
	RoleAdmin Role = "admin"
	// RoleManager has elevated access but cannot manage users or settings.
	RoleManager Role = "manager"
	// RoleUser has the standard resource CRUD permissions.
	RoleUser Role = "user"
	// RoleReadOnly can only read resources.
	RoleReadOnly Role = "readonly"
	// RoleGuest can only read resources.
	RoleGuest Role = "guest"
)

// ParseRole converts a string to a Role, defaulting unknown values to guest.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleUser, RoleReadOnly, RoleGuest:
		return Role(s)
	default:
		return RoleGuest
	}
}

// String returns the wire representation of the role.
func (r Role) String() string { return string(r) }

// Permission names a single capability.
type Permission string

const (
	PermCreateResource Permission = "create_resource"
	PermReadResource   Permission = "read_resource"
	PermUpdateResource Permission = "update_resource"
	PermDeleteResource Permission = "delete_resource"
	PermManageUsers    Permission = "manage_users"
	PermManageSettings Permission = "manage_settings"
	PermViewReports    Permission = "view_reports"
	PermExportData     Permission = "export_data"
	PermImportData     Permission = "import_data"
)

// CustomPermission builds a namespaced permission outside the fixed set.
func CustomPermission(name string) Permission {
	return Permission("custom:" + name)
}

// rolePermissions is the fixed default permission set per role.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermCreateResource, PermReadResource, PermUpdateResource, PermDeleteResource,
		PermManageUsers, PermManageSettings, PermViewReports, PermExportData, PermImportData,
	},
	RoleManager: {
		PermCreateResource, PermReadResource, PermUpdateResource, PermDeleteResource,
		PermViewReports, PermExportData, PermImportData,
	},
	RoleUser: {
		PermCreateResource, PermReadResource, PermUpdateResource, PermDeleteResource,
	},
	RoleReadOnly: {PermReadResource},
	RoleGuest:    {PermReadResource},
}

// RolePermissions returns a copy of the default permission set for a role.
func RolePermissions(role Role) []Permission {
	defaults := rolePermissions[role]
	return append([]Permission(nil), defaults...)
}

// User is an account on the upstream API.
type User struct {
	ID            string       `json:"id"`
	Email         string       `json:"email"`
	Name          string       `json:"name"`
	Role          Role         `json:"role"`
	Permissions   []Permission `json:"permissions,omitempty"`
	Enabled       bool         `json:"enabled"`
	EmailVerified bool         `json:"email_verified"`
	CreatedAt     time.Time    `json:"created_at"`
	LastLogin     *time.Time   `json:"last_login,omitempty"`
}

// NewUser creates an enabled, unverified user with the standard role.
func NewUser(id, email, name string) User {
	return User{
		ID:        id,
		Email:     email,
		Name:      name,
		Role:      RoleUser,
		Enabled:   true,
		CreatedAt: time.Now().UTC(),
	}
}

// WithRole sets the role and returns the user for chaining.
func (u User) WithRole(role Role) User {
	u.Role = role
	return u
}

// WithPermission grants an explicit permission and returns the user for
// chaining. Duplicates are ignored.
func (u User) WithPermission(p Permission) User {
	for _, existing := range u.Permissions {
		if existing == p {
			return u
		}
	}
	u.Permissions = append(u.Permissions, p)
	return u
}

// WithEmailVerified sets the verification flag and returns the user.
func (u User) WithEmailVerified(verified bool) User {
	u.EmailVerified = verified
	return u
}

// RecordLogin stamps the last login time with now.
func (u *User) RecordLogin() {
	now := time.Now().UTC()
	u.LastLogin = &now
}

// HasPermission reports whether the user holds a permission, either
// explicitly or through their role's default set. Admins hold everything.
func (u User) HasPermission(p Permission) bool {
	if u.Role == RoleAdmin {
		return true
	}
	if _, ok := u.EffectivePermissions()[p]; ok {
		return true
	}
	return false
}

// EffectivePermissions returns the union of the user's explicit permissions
// and their role's default set.
func (u User) EffectivePermissions() map[Permission]struct{} {
	perms := make(map[Permission]struct{}, len(u.Permissions)+len(rolePermissions[u.Role]))
	for _, p := range u.Permissions {
		perms[p] = struct{}{}
	}
	for _, p := range rolePermissions[u.Role] {
		perms[p] = struct{}{}
	}
	return perms
}

// Validate checks the identity fields.
func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.Name, validation.Required),
		validation.Field(&u.Email, validation.Required, is.Email),
	)
}
