package domain

// Access roles. Role names follow the deployment's convention.
const (
	RoleStandard = "usuario"
	RoleManager  = "gestor"
	RoleAdmin    = "admin"
)

// Tier is the access level an operation requires.
type Tier int

const (
	// TierStandard allows any authenticated caller.
	TierStandard Tier = iota
	// TierElevated allows managers and admins.
	TierElevated
	// TierSuperAdmin allows admins only.
	TierSuperAdmin
)

// ValidRole reports whether role belongs to the role enum.
func ValidRole(role string) bool {
	switch role {
	case RoleStandard, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Allows reports whether a caller with the given role clears this tier.
func (t Tier) Allows(role string) bool {
	switch t {
	case TierStandard:
		return ValidRole(role)
	case TierElevated:
		return role == RoleManager || role == RoleAdmin
	case TierSuperAdmin:
		return role == RoleAdmin
	}
	return false
}
