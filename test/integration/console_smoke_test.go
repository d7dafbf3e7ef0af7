package integration_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/tarekmagdym/MasterStack/internal/app/consoleapp"
	"github.com/tarekmagdym/MasterStack/internal/config"
	"github.com/tarekmagdym/MasterStack/internal/domain/enums"
	"github.com/tarekmagdym/MasterStack/internal/guard"
	"github.com/tarekmagdym/MasterStack/internal/services/api"
	"github.com/tarekmagdym/MasterStack/internal/services/authgw"
)

const jwtSecret = "integration-secret"

type fakeAccount struct {
	ID       string
	Name     string
	Password string
	Role     string
}

// fakeAdminAPI is a minimal stand-in for the real MasterStack backend:
// stateless HS256 bearer tokens, the shared response envelope, 401/403 by
// status code only.
type fakeAdminAPI struct {
	mu       sync.Mutex
	accounts map[string]fakeAccount
	revoked  map[string]bool
}

func newFakeAdminAPI() *fakeAdminAPI {
	return &fakeAdminAPI{
		accounts: map[string]fakeAccount{
			"a@x.com": {ID: "u1", Name: "Admin", Password: "secret", Role: "admin"},
			"e@x.com": {ID: "u2", Name: "Employee", Password: "secret", Role: "employee"},
			"s@x.com": {ID: "u3", Name: "Root", Password: "secret", Role: "super_admin"},
		},
		revoked: map[string]bool{},
	}
}

func (f *fakeAdminAPI) revoke(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[email] = true
}

func (f *fakeAdminAPI) router() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", f.login)
		r.Group(func(r chi.Router) {
			r.Use(f.requireAuth)
			r.Get("/auth/me", f.me)
			r.Get("/admin/projects", f.listProjects)
			r.With(f.requireRole("super_admin")).Get("/admin/users", f.listUsers)
		})
	})
	return r
}

func writeEnvelope(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (f *fakeAdminAPI) issueToken(email string, acc fakeAccount) (string, error) {
	claims := jwt.MapClaims{
		"sub":   acc.ID,
		"email": email,
		"role":  acc.Role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
}

func (f *fakeAdminAPI) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeEnvelope(w, http.StatusBadRequest, map[string]any{"success": false, "message": "invalid body"})
		return
	}

	f.mu.Lock()
	acc, ok := f.accounts[creds.Email]
	f.mu.Unlock()
	if !ok || acc.Password != creds.Password {
		writeEnvelope(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := f.issueToken(creds.Email, acc)
	if err != nil {
		writeEnvelope(w, http.StatusInternalServerError, map[string]any{"success": false})
		return
	}

	writeEnvelope(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "ok",
		"data": map[string]any{
			"token": token,
			"user": map[string]any{
				"_id": acc.ID, "name": acc.Name, "email": creds.Email, "role": acc.Role,
			},
		},
	})
}

func (f *fakeAdminAPI) authenticate(r *http.Request) (string, fakeAccount, bool) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fakeAccount{}, false
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", fakeAccount{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fakeAccount{}, false
	}
	email, _ := claims["email"].(string)

	f.mu.Lock()
	defer f.mu.Unlock()
	acc, ok := f.accounts[email]
	if !ok || f.revoked[email] {
		return "", fakeAccount{}, false
	}
	return email, acc, true
}

func (f *fakeAdminAPI) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := f.authenticate(r); !ok {
			writeEnvelope(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid or expired token"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeAdminAPI) requireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, acc, ok := f.authenticate(r)
			if !ok {
				writeEnvelope(w, http.StatusUnauthorized, map[string]any{"success": false})
				return
			}
			for _, role := range roles {
				if acc.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeEnvelope(w, http.StatusForbidden, map[string]any{"success": false, "message": "insufficient role"})
		})
	}
}

func (f *fakeAdminAPI) me(w http.ResponseWriter, r *http.Request) {
	email, acc, _ := f.authenticate(r)
	writeEnvelope(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]any{"_id": acc.ID, "name": acc.Name, "email": email, "role": acc.Role},
	})
}

func (f *fakeAdminAPI) listProjects(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, http.StatusOK, map[string]any{
		"success": true,
		"data": []map[string]any{
			{"_id": "p1", "title": "Corporate site", "category": "web"},
		},
		"pagination": map[string]any{"page": 1, "limit": 20, "total": 1, "pages": 1},
	})
}

func (f *fakeAdminAPI) listUsers(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, http.StatusOK, map[string]any{
		"success": true,
		"data": []map[string]any{
			{"_id": "u1", "name": "Admin", "email": "a@x.com", "role": "admin", "isActive": true},
		},
	})
}

func newConsoleAgainst(t *testing.T, backend *fakeAdminAPI) *consoleapp.App {
	t.Helper()

	srv := httptest.NewServer(backend.router())
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL + "/api"
	cfg.Session.Dir = t.TempDir()

	app, err := consoleapp.New(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("create console app: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestLoginBrowseLogout(t *testing.T) {
	app := newConsoleAgainst(t, newFakeAdminAPI())
	ctx := context.Background()

	user, err := app.Auth.Login(ctx, authgw.Credentials{Email: "a@x.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Role != enums.RoleAdmin {
		t.Fatalf("unexpected role: %s", user.Role)
	}

	if dec := app.Nav.Go("/admin/projects-management"); dec != guard.Allow {
		t.Fatalf("admin should enter projects view, got %v", dec)
	}
	projects, page, err := app.API.Projects().List(ctx, api.ListParams{Page: 1})
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Corporate site" {
		t.Fatalf("unexpected projects: %+v", projects)
	}
	if page == nil || page.Total != 1 {
		t.Fatalf("pagination missing: %+v", page)
	}

	if err := app.Auth.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if app.Store.IsAuthenticated() {
		t.Fatalf("store should be signed out")
	}
	if app.Nav.Current() != guard.LoginPath {
		t.Fatalf("logout should land on login, got %s", app.Nav.Current())
	}

	if _, _, err := app.API.Projects().List(ctx, api.ListParams{}); !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("listing without a session should be unauthenticated, got %v", err)
	}
}

func TestEmployeeDeniedUsersSurface(t *testing.T) {
	app := newConsoleAgainst(t, newFakeAdminAPI())
	ctx := context.Background()

	if _, err := app.Auth.Login(ctx, authgw.Credentials{Email: "e@x.com", Password: "secret"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	// The guard stops the navigation before any request is made.
	if dec := app.Nav.Go("/admin/admins-management"); dec != guard.RedirectDashboard {
		t.Fatalf("employee should be redirected, got %v", dec)
	}
	if app.Nav.Current() != guard.DashboardPath {
		t.Fatalf("expected dashboard, got %s", app.Nav.Current())
	}

	// A direct API call is denied server-side: 403, session intact.
	if _, _, err := app.API.Users().List(ctx, api.ListParams{}); !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if !app.Store.IsAuthenticated() {
		t.Fatalf("403 must not destroy the session")
	}
}

func TestRevokedAccountClearsSession(t *testing.T) {
	backend := newFakeAdminAPI()
	app := newConsoleAgainst(t, backend)
	ctx := context.Background()

	if _, err := app.Auth.Login(ctx, authgw.Credentials{Email: "a@x.com", Password: "secret"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	backend.revoke("a@x.com")

	if _, err := app.Auth.RefreshProfile(ctx); !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("revoked account should be unauthenticated, got %v", err)
	}
	if app.Store.IsAuthenticated() {
		t.Fatalf("session should be cleared after server-side revocation")
	}
	if app.Nav.Current() != guard.LoginPath {
		t.Fatalf("revocation should land on login, got %s", app.Nav.Current())
	}
}

func TestRedisBackedSessionIsSharedAcrossProcesses(t *testing.T) {
	backend := newFakeAdminAPI()
	srv := httptest.NewServer(backend.router())
	t.Cleanup(srv.Close)

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL + "/api"
	cfg.Session.Backend = config.SessionBackendRedis
	cfg.Session.Redis.Addr = mini.Addr()

	first, err := consoleapp.New(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("create first console: %v", err)
	}
	t.Cleanup(func() { _ = first.Close() })

	if _, err := first.Auth.Login(context.Background(), authgw.Credentials{Email: "s@x.com", Password: "secret"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	// A second process against the same Redis resumes the session.
	second, err := consoleapp.New(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("create second console: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	if !second.Store.IsAuthenticated() {
		t.Fatalf("second console should resume the shared session")
	}
	user := second.Store.CurrentUser()
	if user == nil || user.Role != enums.RoleSuperAdmin {
		t.Fatalf("unexpected resumed user: %+v", user)
	}

	users, _, err := second.API.Users().List(context.Background(), api.ListParams{})
	if err != nil {
		t.Fatalf("super_admin should list users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("unexpected users: %+v", users)
	}
}
