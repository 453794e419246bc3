// Package session owns the authenticated-identity state of the client:
// the bearer token and the current user profile.
//
// The Store is the single writer of session state. It persists the token in
// the local state repository, exposes it to the transport layer through the
// api.TokenProvider contract, and loads the user profile from the backend.
// All methods are safe for concurrent use; the profile load triggered by
// InitializeFromStorage runs in the background and may race the prompt loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/iqranow/iqranow-cli/internal/client/api"
	"github.com/iqranow/iqranow-cli/internal/client/models"
	"github.com/iqranow/iqranow-cli/internal/client/repositories/state"
	"github.com/iqranow/iqranow-cli/internal/logging"
)

// Store holds the auth session: token, user profile, and the in-flight
// profile-load flag. Invariant: a non-nil user implies a non-empty token.
type Store struct {
	mu           sync.RWMutex
	token        string
	user         *models.UserProfile
	initializing bool

	repo   state.Repository
	client api.Client
	log    logging.Logger

	initOnce sync.Once
}

// NewStore builds a Store over the durable state repository. BindClient must
// be called before InitializeFromStorage or LoadUser; the two-step wiring
// breaks the construction cycle between the store (a TokenProvider) and the
// API client that consumes it.
func NewStore(repo state.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// BindClient attaches the API client used for profile loads.
func (s *Store) BindClient(client api.Client) {
	s.client = client
}

// Token returns the current bearer token, or "" when signed out.
// Satisfies api.TokenProvider.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the loaded profile, or nil while signed out or before the
// background load has resolved.
func (s *Store) User() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Initializing reports whether a profile load is in flight.
func (s *Store) Initializing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initializing
}

// LoggedIn reports whether a token is present.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

// SetToken stores token as the current credential. A non-empty token is
// persisted under the "token" key; an empty one removes the persisted value.
// The in-memory token is always updated, even when persistence fails.
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	if token == "" {
		s.user = nil
	}
	s.mu.Unlock()

	if token != "" {
		if err := s.repo.Set(ctx, state.KeyToken, []byte(token)); err != nil {
			return fmt.Errorf("failed to persist token: %w", err)
		}
		return nil
	}
	if err := s.repo.Delete(ctx, state.KeyToken); err != nil {
		return fmt.Errorf("failed to remove persisted token: %w", err)
	}
	return nil
}

// SetUser records the profile. Ignored while signed out, preserving the
// user-implies-token invariant.
func (s *Store) SetUser(user *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return
	}
	s.user = user
}

// InitializeFromStorage restores a persisted token, if any, and kicks off a
// background profile load. With no persisted token the session is left
// unchanged. Only the first call does anything; subsequent calls are no-ops.
func (s *Store) InitializeFromStorage(ctx context.Context) error {
	var err error
	s.initOnce.Do(func() {
		var saved []byte
		saved, err = s.repo.Get(ctx, state.KeyToken)
		if err != nil {
			err = fmt.Errorf("failed to read persisted token: %w", err)
			return
		}
		if len(saved) == 0 {
			return
		}
		if err = s.SetToken(ctx, string(saved)); err != nil {
			return
		}
		// Load the profile in the background; the UI tolerates a transient
		// "user unknown" state until this resolves.
		go func() {
			if loadErr := s.LoadUser(ctx); loadErr != nil {
				s.log.Warn(ctx, "background profile load failed", "error", loadErr)
			}
		}()
	})
	return err
}

// LoadUser fetches the current profile for the held token. A rejected
// credential (401/403) clears the session, equivalent to logout. Transport
// failures leave the session intact and are reported to the caller, so a
// flaky network does not sign the user out.
func (s *Store) LoadUser(ctx context.Context) error {
	if s.Token() == "" {
		return nil
	}

	s.mu.Lock()
	s.initializing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.initializing = false
		s.mu.Unlock()
	}()

	user, err := s.client.Me(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.log.Warn(ctx, "stored token rejected, clearing session")
			if clearErr := s.SetToken(ctx, ""); clearErr != nil {
				return clearErr
			}
			return err
		}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	s.SetUser(user)
	return nil
}

// Logout clears the user and then the token, removing the persisted value.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return s.SetToken(ctx, "")
}
