package domain

// Role determines a caller's visibility over documents.
type Role string

const (
	// RoleStandard callers see only documents they own.
	RoleStandard Role = "standard"

	// RolePrivileged callers see all documents.
	RolePrivileged Role = "privileged"
)

// Caller is the identity performing an operation. It is produced by the
// authentication layer, which is outside this core; the core only consumes it.
type Caller struct {
	// PrincipalID identifies the user or service account.
	PrincipalID string

	// Role is the caller's access level.
	Role Role
}

// Privileged reports whether the caller may see documents it does not own.
func (c Caller) Privileged() bool {
	return c.Role == RolePrivileged
}

// CanAccess reports whether the caller may read the given document.
func (c Caller) CanAccess(doc *Document) bool {
	if doc == nil {
		return false
	}
	return c.Privileged() || doc.OwnerID == c.PrincipalID
}
