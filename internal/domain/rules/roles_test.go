package rules

import (
	"testing"

	"github.com/tarekmagdym/MasterStack/internal/domain/enums"
)

func TestHasAnyRole(t *testing.T) {
	if !HasAnyRole(enums.RoleAdmin, enums.RoleSuperAdmin, enums.RoleAdmin) {
		t.Fatalf("admin should match [super_admin, admin]")
	}
	if HasAnyRole(enums.RoleEmployee, enums.RoleSuperAdmin) {
		t.Fatalf("employee should not match [super_admin]")
	}
	if HasAnyRole(enums.RoleEmployee) {
		t.Fatalf("empty candidate set should never match")
	}
}

func TestRankOrdering(t *testing.T) {
	if !(RankOf(enums.RoleEmployee) < RankOf(enums.RoleAdmin)) {
		t.Fatalf("employee should rank below admin")
	}
	if !(RankOf(enums.RoleAdmin) < RankOf(enums.RoleSuperAdmin)) {
		t.Fatalf("admin should rank below super_admin")
	}
	if RankOf(enums.Role("ghost")) != 0 {
		t.Fatalf("unknown role should rank zero")
	}
}

func TestCapabilitiesFor(t *testing.T) {
	emp := CapabilitiesFor(enums.RoleEmployee)
	if emp.CanWrite || emp.CanDelete || emp.CanManageUsers || emp.IsSuperAdmin {
		t.Fatalf("employee should have no elevated capabilities: %+v", emp)
	}

	adm := CapabilitiesFor(enums.RoleAdmin)
	if !adm.CanWrite || !adm.CanDelete {
		t.Fatalf("admin should be able to write and delete: %+v", adm)
	}
	if adm.CanManageUsers || adm.IsSuperAdmin {
		t.Fatalf("admin should not manage users: %+v", adm)
	}

	sup := CapabilitiesFor(enums.RoleSuperAdmin)
	if !sup.CanWrite || !sup.CanDelete || !sup.CanManageUsers || !sup.IsSuperAdmin {
		t.Fatalf("super_admin should have all capabilities: %+v", sup)
	}
}
