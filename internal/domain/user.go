package domain

// Role is the closed set of permission levels a caller can hold.
// Authorization is a pure function of (identity, required role).
type Role string

const (
	RoleUser       Role = "user"
	RoleSuperAdmin Role = "super_admin"
)

// Identity is the authenticated caller attached to a request by the access
// gate. It is established per request and read-only afterwards.
type Identity struct {
	UserID string
	Role   Role
}

// Authorize reports whether the identity satisfies the required role.
// super_admin implies user; nothing implies super_admin.
func (i Identity) Authorize(required Role) bool {
	if required == RoleUser {
		return i.Role == RoleUser || i.Role == RoleSuperAdmin
	}
	return i.Role == required
}
