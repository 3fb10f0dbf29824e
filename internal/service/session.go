package service

import (
	"context"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nutriplan/nutriplan-cli/internal/apiclient"
	"github.com/nutriplan/nutriplan-cli/internal/models"
)

// SessionState is the session manager's resolution state
type SessionState string

const (
	StateResolving       SessionState = "resolving"
	StateAuthenticated   SessionState = "authenticated"
	StateUnauthenticated SessionState = "unauthenticated"
)

// SessionManager owns the authenticated identity and the bearer credential.
// Exactly one identity (or none) is held at a time. Operations are not safe
// for concurrent use; callers must serialize calls, mirroring a UI that
// disables its submit control while a request is outstanding.
type SessionManager struct {
	api      AuthAPI
	creds    CredentialStore
	notifier Notifier
	nav      Navigator

	state     SessionState
	user      *models.UserProfile
	listeners []func(ctx context.Context, user *models.UserProfile)
}

// NewSessionManager creates a session manager in the Resolving state
func NewSessionManager(api AuthAPI, creds CredentialStore, notifier Notifier, nav Navigator) *SessionManager {
	return &SessionManager{
		api:      api,
		creds:    creds,
		notifier: notifier,
		nav:      nav,
		state:    StateResolving,
	}
}

// State returns the current resolution state
func (s *SessionManager) State() SessionState {
	return s.state
}

// User returns the resolved identity, or nil
func (s *SessionManager) User() *models.UserProfile {
	return s.user
}

// Resolving reports whether identity resolution is still in progress
func (s *SessionManager) Resolving() bool {
	return s.state == StateResolving
}

// OnIdentityChanged registers a callback invoked whenever the resolved
// identity is set, replaced, or cleared
func (s *SessionManager) OnIdentityChanged(fn func(ctx context.Context, user *models.UserProfile)) {
	s.listeners = append(s.listeners, fn)
}

func (s *SessionManager) setUser(ctx context.Context, user *models.UserProfile) {
	s.user = user
	for _, fn := range s.listeners {
		fn(ctx, user)
	}
}

// Resolve issues a profile fetch using any persisted credential and settles
// the session into Authenticated or Unauthenticated. An authorization-denied
// response is the expected "not logged in" path and surfaces no error;
// anything else is logged but ends the same way.
func (s *SessionManager) Resolve(ctx context.Context) {
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		if !apiclient.IsUnauthorized(err) {
			log.Printf("failed to load profile: %v", err)
		}
		if clearErr := s.creds.ClearToken(); clearErr != nil {
			log.Printf("failed to clear credential: %v", clearErr)
		}
		s.state = StateUnauthenticated
		s.setUser(ctx, nil)
		return
	}

	merged := user.WithDefaults()
	s.state = StateAuthenticated
	s.setUser(ctx, &merged)
}

// Login exchanges credentials for a bearer token. On failure the extracted
// message is surfaced and the error is returned so the caller can keep its
// form state.
func (s *SessionManager) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.notifier.Error(apiclient.ExtractMessage(err))
		return err
	}
	return s.establish(ctx, resp, welcomeMessage(resp.User.Name))
}

// Register creates an account; success side effects match Login
func (s *SessionManager) Register(ctx context.Context, req apiclient.RegisterRequest) error {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.notifier.Error(apiclient.ExtractMessage(err))
		return err
	}
	return s.establish(ctx, resp, "Account created! Let's build your plan.")
}

func (s *SessionManager) establish(ctx context.Context, resp apiclient.AuthResponse, successMsg string) error {
	if err := s.creds.SetToken(resp.AccessToken); err != nil {
		s.notifier.Error(apiclient.ExtractMessage(err))
		return err
	}

	merged := resp.User.WithDefaults()
	s.state = StateAuthenticated
	s.setUser(ctx, &merged)
	s.notifier.Success(successMsg)
	s.nav.NavigateTo(NavDashboard)
	return nil
}

func welcomeMessage(name string) string {
	msg := "Welcome back!"
	if name != "" {
		msg += ", " + name
	}
	return msg
}

// Logout clears the credential and the identity. Always succeeds; no
// network call is made.
func (s *SessionManager) Logout(ctx context.Context) {
	if err := s.creds.ClearToken(); err != nil {
		log.Printf("failed to clear credential: %v", err)
	}
	s.state = StateUnauthenticated
	s.setUser(ctx, nil)
	s.nav.NavigateTo(NavLogin)
}

// RefreshProfile re-enters the loading state and reissues the profile fetch
func (s *SessionManager) RefreshProfile(ctx context.Context) {
	s.state = StateResolving
	s.Resolve(ctx)
}

// UpdateProfile changes profile fields on the server, then refreshes the
// resolved identity
func (s *SessionManager) UpdateProfile(ctx context.Context, update apiclient.ProfileUpdate) error {
	if _, err := s.api.UpdateProfile(ctx, update); err != nil {
		s.notifier.Error(apiclient.ExtractMessage(err))
		return err
	}
	s.RefreshProfile(ctx)
	s.notifier.Success("Profile updated successfully!")
	return nil
}

// TokenExpiry reports the stored credential's expiry claim. The token is
// parsed without verification; the client holds no signing secret, and
// resolution authority stays with the server.
func (s *SessionManager) TokenExpiry() (time.Time, bool) {
	token := s.creds.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
