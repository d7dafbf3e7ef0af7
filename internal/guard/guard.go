// Package guard decides, once per navigation attempt, whether the current
// session may enter a destination. The decision is terminal in one step.
package guard

import (
	"github.com/tarekmagdym/MasterStack/internal/domain/enums"
)

const (
	LoginPath     = "/admin/login"
	DashboardPath = "/admin/dashboard"
)

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect:" + LoginPath
	case RedirectDashboard:
		return "redirect:" + DashboardPath
	}
	return "unknown"
}

// Requirement annotates a destination. Zero value means the destination is
// public. RequireAuth with no roles admits any authenticated session.
type Requirement struct {
	RequireAuth bool
	Roles       []enums.Role
}

// Session is the read-only view of session state the guard needs.
type Session interface {
	IsAuthenticated() bool
	Role() (enums.Role, bool)
}

// Evaluate checks authentication strictly before authorization: a
// session-less request to a role-restricted destination redirects to login,
// never to the insufficient-role destination. An authenticated session with
// the wrong role is always moved to the dashboard, never left in place.
func Evaluate(sess Session, req Requirement) Decision {
	if !req.RequireAuth {
		return Allow
	}
	if sess == nil || !sess.IsAuthenticated() {
		return RedirectLogin
	}
	if len(req.Roles) == 0 {
		return Allow
	}
	role, ok := sess.Role()
	if !ok {
		return RedirectLogin
	}
	for _, allowed := range req.Roles {
		if role == allowed {
			return Allow
		}
	}
	return RedirectDashboard
}
