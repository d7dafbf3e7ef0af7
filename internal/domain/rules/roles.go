package rules

import "github.com/tarekmagdym/MasterStack/internal/domain/enums"

// Rank mirrors the backend ROLE_HIERARCHY: higher rank, more privilege.
var roleRank = map[enums.Role]int{
	enums.RoleEmployee:   1,
	enums.RoleAdmin:      2,
	enums.RoleSuperAdmin: 3,
}

type Capabilities struct {
	CanWrite       bool
	CanDelete      bool
	CanManageUsers bool
	IsSuperAdmin   bool
}

func RankOf(role enums.Role) int {
	return roleRank[role]
}

func HasAnyRole(current enums.Role, candidates ...enums.Role) bool {
	for _, c := range candidates {
		if current == c {
			return true
		}
	}
	return false
}

func CapabilitiesFor(role enums.Role) Capabilities {
	isAdmin := HasAnyRole(role, enums.RoleAdmin, enums.RoleSuperAdmin)
	return Capabilities{
		CanWrite:       isAdmin,
		CanDelete:      isAdmin,
		CanManageUsers: role == enums.RoleSuperAdmin,
		IsSuperAdmin:   role == enums.RoleSuperAdmin,
	}
}
