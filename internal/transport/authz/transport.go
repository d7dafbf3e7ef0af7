// Package authz enforces the HTTP boundary: every outgoing request gets the
// bearer credential, every authorization failure coming back is turned into
// the matching session/navigation reaction.
package authz

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tarekmagdym/MasterStack/internal/session"
)

// Navigator is the navigation surface used on role denials. Login
// redirects happen inside the session store's own clear path.
type Navigator interface {
	NavigateToDashboard()
}

// Transport is an http.RoundTripper middleware. Responses always pass
// through to the caller, the side effects here are session clear (401) and
// navigation (403).
type Transport struct {
	base  http.RoundTripper
	store *session.Store
	nav   Navigator
	log   *zap.Logger
}

func New(base http.RoundTripper, store *session.Store, nav Navigator, log *zap.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Transport{base: base, store: store, nav: nav, log: log}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("X-Request-Id", uuid.NewString())

	// Unconditional: public endpoints tolerate the extra header, there is
	// no per-endpoint exemption list.
	if token := t.store.Token(); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// Server could not validate the credential. Equivalent to a local
		// logout; ClearSession is idempotent, so concurrent failures
		// collapse into one clear and one redirect.
		if clearErr := t.store.ClearSession(req.Context()); clearErr != nil {
			t.log.Warn("clear session after 401", zap.Error(clearErr))
		}
	case http.StatusForbidden:
		// Credential is valid, role is not. Session stays intact.
		if t.nav != nil {
			t.nav.NavigateToDashboard()
		}
	}

	return resp, nil
}
