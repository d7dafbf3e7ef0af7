package guard

import (
	"strings"

	"github.com/tarekmagdym/MasterStack/internal/domain/enums"
)

// Routes is the console's navigation table. Public site pages carry no
// requirement; admin views require a session; admins management is the one
// super_admin-only view.
var Routes = map[string]Requirement{
	"/":             {},
	"/about":        {},
	"/services":     {},
	"/technologies": {},
	"/projects":     {},
	"/contact":      {},

	LoginPath: {},

	DashboardPath:                {RequireAuth: true},
	"/admin/projects-management": {RequireAuth: true},
	"/admin/services-management": {RequireAuth: true},
	"/admin/technologies":        {RequireAuth: true},
	"/admin/team-management":     {RequireAuth: true},
	"/admin/testimonials":        {RequireAuth: true},
	"/admin/messages":            {RequireAuth: true},
	"/admin/activity-logs":       {RequireAuth: true},
	"/admin/admins-management":   {RequireAuth: true, Roles: []enums.Role{enums.RoleSuperAdmin}},
}

// RequirementFor returns the annotation for a destination. Unknown
// destinations under /admin default to an authenticated requirement, other
// unknown destinations are public.
func RequirementFor(path string) Requirement {
	if req, ok := Routes[path]; ok {
		return req
	}
	if strings.HasPrefix(path, "/admin") {
		return Requirement{RequireAuth: true}
	}
	return Requirement{}
}
