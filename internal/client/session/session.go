// Package session holds the process-wide authentication state of the
// terminal client and the operations that move it between states:
// anonymous (no token, no user), hydrating (stored token, user not yet
// fetched), authenticated (token and user present).
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/microbank/securebank/internal/client/api"
	"github.com/microbank/securebank/internal/client/models"
	"github.com/microbank/securebank/internal/logging"
)

// Status names the state of the session state machine.
type Status string

const (
	StatusAnonymous     Status = "anonymous"
	StatusHydrating     Status = "hydrating"
	StatusAuthenticated Status = "authenticated"
)

// Credentials are the sign-in inputs forwarded to the auth endpoint.
type Credentials struct {
	Email    string
	Password string
}

// Manager owns the current session. It is the single writer of the token
// and cached user record; the user is replaced wholesale after API
// responses and never mutated in place.
type Manager struct {
	api    api.Client
	tokens TokenStore
	log    logging.Logger
	token  string
	user   *models.User
}

// NewManager builds a session manager, hydrating any persisted token into
// the API client. With a stored token the session starts in the hydrating
// state until the first user fetch.
func NewManager(apiClient api.Client, tokens TokenStore, log logging.Logger) (*Manager, error) {
	token, err := tokens.Load()
	if err != nil {
		return nil, fmt.Errorf("loading stored token: %w", err)
	}
	m := &Manager{api: apiClient, tokens: tokens, log: log}
	if token != "" {
		m.token = token
		apiClient.SetToken(token)
	}
	return m, nil
}

// Status derives the current state from the token/user pair.
func (m *Manager) Status() Status {
	switch {
	case m.user != nil:
		return StatusAuthenticated
	case m.token != "":
		return StatusHydrating
	default:
		return StatusAnonymous
	}
}

// User returns the cached user record, nil unless authenticated.
func (m *Manager) User() *models.User {
	return m.user
}

// Token returns the active bearer token, empty when anonymous.
func (m *Manager) Token() string {
	return m.token
}

// Login authenticates against the auth endpoint. On success the returned
// token is stored durably and the user is fetched to complete the
// transition to authenticated. On failure the session is left untouched
// and the error is returned as-is, so a *api.FieldError can be attached to
// the named form field by the caller.
func (m *Manager) Login(ctx context.Context, creds Credentials) error {
	token, err := m.api.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return err
	}

	m.token = token
	m.api.SetToken(token)
	if err := m.tokens.Save(token); err != nil {
		m.log.Warn(ctx, "could not persist session token", "error", err)
	}

	if err := m.FetchCurrentUser(ctx); err != nil {
		// login itself succeeded; the session stays hydrating and the
		// user fetch is retried on the next access
		m.log.Warn(ctx, "user fetch after login failed", "error", err)
	}
	return nil
}

// FetchCurrentUser requests the user owning the stored token. Any failure
// clears the cached user and is treated as "not authenticated" rather than
// fatal; an unauthorized reply additionally discards the stored token,
// since retrying with it can never succeed.
func (m *Manager) FetchCurrentUser(ctx context.Context) error {
	u, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.user = nil
		if errors.Is(err, api.ErrUnauthorized) {
			if cerr := m.clearToken(); cerr != nil {
				m.log.Warn(ctx, "could not remove stored token", "error", cerr)
			}
		}
		return err
	}
	m.user = u
	return nil
}

// CurrentUser returns the signed-in user, fetching it first whenever a
// token exists but no user has been loaded. Once a user is present no
// further automatic fetch occurs until logout/login.
func (m *Manager) CurrentUser(ctx context.Context) (*models.User, error) {
	if m.user == nil && m.token != "" {
		if err := m.FetchCurrentUser(ctx); err != nil {
			return nil, err
		}
	}
	return m.user, nil
}

// Logout invalidates the session server-side on a best-effort basis, then
// unconditionally clears the local user, token, and persisted token.
func (m *Manager) Logout(ctx context.Context) error {
	var userID string
	if m.user != nil {
		userID = m.user.ID
	}
	if err := m.api.Logout(ctx, userID); err != nil {
		m.log.Warn(ctx, "server-side logout failed", "error", err)
	}
	m.user = nil
	return m.clearToken()
}

func (m *Manager) clearToken() error {
	m.token = ""
	m.api.SetToken("")
	if err := m.tokens.Clear(); err != nil {
		return fmt.Errorf("removing stored token: %w", err)
	}
	return nil
}
