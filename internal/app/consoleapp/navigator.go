package consoleapp

import (
	"sync"

	"go.uber.org/zap"

	"github.com/tarekmagdym/MasterStack/internal/guard"
)

// Navigator is the console's navigation surface. It tracks the current
// destination and is handed by reference to the session store (login
// redirects) and the request authorizer (dashboard redirects).
type Navigator struct {
	log *zap.Logger

	mu      sync.Mutex
	current string
	store   guard.Session
}

func NewNavigator(log *zap.Logger) *Navigator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Navigator{log: log, current: guard.LoginPath}
}

// Bind attaches the session view used for guard evaluation. Separate from
// the constructor because store and navigator reference each other.
func (n *Navigator) Bind(store guard.Session) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.store = store
}

func (n *Navigator) NavigateToLogin() {
	n.goTo(guard.LoginPath)
}

func (n *Navigator) NavigateToDashboard() {
	n.goTo(guard.DashboardPath)
}

func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Go runs one guarded navigation attempt: the guard decides, the navigator
// moves. A denial is never silent, the redirect target becomes current.
func (n *Navigator) Go(path string) guard.Decision {
	n.mu.Lock()
	store := n.store
	n.mu.Unlock()

	decision := guard.Evaluate(store, guard.RequirementFor(path))
	switch decision {
	case guard.Allow:
		n.goTo(path)
	case guard.RedirectLogin:
		n.goTo(guard.LoginPath)
	case guard.RedirectDashboard:
		n.goTo(guard.DashboardPath)
	}
	return decision
}

func (n *Navigator) goTo(path string) {
	n.mu.Lock()
	n.current = path
	n.mu.Unlock()
	n.log.Debug("navigate", zap.String("to", path))
}
