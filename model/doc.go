// Package model holds the domain types shared across the client: resources
// with a type tag and free-form key-value payloads, and users with
// role-based access control.
//
// Validation rules live next to the types (ResourceData.Validate,
// User.Validate) and mirror what the upstream API enforces, so callers can
// fail fast before spending a network round trip.
//
// Permission resolution is a pure union: a user's effective permissions are
// their explicit grants plus the fixed default set for their role (see
// RolePermissions). Admins additionally short-circuit HasPermission.
package model
