// Package authgw bridges the remote auth endpoints and the session store.
// It is the only component that creates or refreshes a session; failures
// never leave a partial session behind.
package authgw

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tarekmagdym/MasterStack/internal/i18n"
	"github.com/tarekmagdym/MasterStack/internal/pkg/validate"
	"github.com/tarekmagdym/MasterStack/internal/services/api"
	"github.com/tarekmagdym/MasterStack/internal/session"
)

var (
	// ErrInvalidCredentials is the server-reported authentication failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSuperseded means the login response arrived after the session
	// moved on (e.g. an explicit logout) and was discarded.
	ErrSuperseded = errors.New("login superseded by a newer session change")
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type Service struct {
	api   *api.Client
	store *session.Store
	msgs  *i18n.Catalog
	log   *zap.Logger
}

func NewService(apiClient *api.Client, store *session.Store, msgs *i18n.Catalog, log *zap.Logger) *Service {
	if msgs == nil {
		msgs = i18n.NewCatalog(i18n.LangArabic)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{api: apiClient, store: store, msgs: msgs, log: log}
}

type loginData struct {
	Token string       `json:"token"`
	User  session.User `json:"user"`
}

// Login authenticates against the remote API and saves the session on
// success. The save is fenced on the session generation captured before the
// network call, so a response that lands after a logout is discarded.
func (s *Service) Login(ctx context.Context, creds Credentials) (session.User, error) {
	if !validate.Email(creds.Email) || !validate.Required(creds.Password) {
		return session.User{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, s.msgs.T(i18n.MsgInvalidCredentials))
	}

	gen := s.store.Generation()

	env, err := s.api.Post(ctx, "/auth/login", creds)
	if err != nil {
		if errors.Is(err, api.ErrNetwork) || errors.Is(err, api.ErrServer) {
			return session.User{}, err
		}
		return session.User{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, s.failureMessage(env))
	}

	var data loginData
	if err := api.DecodeData(env, &data); err != nil {
		return session.User{}, fmt.Errorf("%w: %s", api.ErrServer, s.msgs.T(i18n.MsgServerError))
	}
	if strings.TrimSpace(data.Token) == "" {
		return session.User{}, fmt.Errorf("%w: %s", api.ErrServer, s.msgs.T(i18n.MsgServerError))
	}

	if err := s.store.SaveSessionIfCurrent(ctx, data.Token, data.User, gen); err != nil {
		if errors.Is(err, session.ErrStaleGeneration) {
			s.log.Info("discarded stale login response", zap.String("email", creds.Email))
			return session.User{}, ErrSuperseded
		}
		return session.User{}, err
	}

	s.log.Info("signed in",
		zap.String("email", data.User.Email),
		zap.String("role", string(data.User.Role)),
	)
	return data.User, nil
}

// Logout destroys the local session. The server keeps no session state for
// bearer tokens, so there is no network round-trip.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.ClearSession(ctx)
}

// RefreshProfile re-fetches the signed-in user and updates the stored
// record; the token is left untouched.
func (s *Service) RefreshProfile(ctx context.Context) (session.User, error) {
	env, err := s.api.Get(ctx, "/auth/me", nil)
	if err != nil {
		return session.User{}, err
	}

	var user session.User
	if err := api.DecodeData(env, &user); err != nil {
		return session.User{}, fmt.Errorf("%w: %s", api.ErrServer, s.msgs.T(i18n.MsgServerError))
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return session.User{}, err
	}
	return user, nil
}

// ChangePassword is a pass-through call; it does not touch session state
// regardless of outcome. The current token stays valid until the server
// rejects it.
func (s *Service) ChangePassword(ctx context.Context, payload ChangePasswordPayload) (string, error) {
	if !validate.Required(payload.CurrentPassword) || !validate.Required(payload.NewPassword) {
		return "", errors.New("current and new password are required")
	}

	env, err := s.api.Put(ctx, "/auth/change-password", payload)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (s *Service) failureMessage(env api.Envelope) string {
	if strings.TrimSpace(env.Message) != "" {
		return env.Message
	}
	return s.msgs.T(i18n.MsgInvalidCredentials)
}
