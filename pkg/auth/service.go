package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bludee/authcore/pkg/directory"
	"github.com/bludee/authcore/pkg/roles"
	"github.com/bludee/authcore/pkg/session"
)

// Service verifies credentials, issues sessions and answers capability
// checks. It is safe for concurrent use as long as its stores are.
type Service struct {
	accounts directory.Store
	sessions session.Store
	hasher   PasswordHasher
	ttl      time.Duration
	logger   *slog.Logger
}

// Option configures a Service during construction.
type Option func(*Service)

// WithHasher sets the credential hashing scheme.
func WithHasher(hasher PasswordHasher) Option {
	return func(s *Service) {
		if hasher != nil {
			s.hasher = hasher
		}
	}
}

// WithSessionTTL overrides the absolute session lifetime.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an authorization service over the given directory and session
// stores. Defaults: bcrypt hashing, the platform's fixed 8-hour session
// lifetime, discarded logs.
func New(accounts directory.Store, sessions session.Store, opts ...Option) *Service {
	s := &Service{
		accounts: accounts,
		sessions: sessions,
		hasher:   NewBcryptHasher(0),
		ttl:      session.DefaultTTL,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Authenticate verifies the credentials and, on success, stamps the
// account's last login and issues a session. The checks run in a fixed
// order — absent account, disabled account, wrong password — and the first
// failure wins, so callers always see the most specific outcome.
//
// Side effects are all-or-nothing: no partial session survives any failure
// path.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*UserInfo, error) {
	account, err := s.accounts.FindAccount(ctx, username)
	if err != nil {
		if errors.Is(err, directory.ErrAccountNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !account.Active {
		return nil, ErrAccountDisabled
	}

	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	capabilities, err := roles.CapabilitiesOf(account.Role)
	if err != nil {
		// Broken invariant: the account references a role the registry
		// does not define. Surface loudly, never as a client outcome.
		s.logger.ErrorContext(ctx, "account references unknown role",
			slog.String("username", account.Username),
			slog.String("role", string(account.Role)),
			slog.String("component", "auth"),
		)
		return nil, errors.Join(ErrBrokenRole, err)
	}
	modules, err := roles.ModulesOf(account.Role)
	if err != nil {
		return nil, errors.Join(ErrBrokenRole, err)
	}

	token, err := session.NewToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	sess := session.New(token, account.Username, account.Role, account.Organization, s.ttl)
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.accounts.RecordLogin(ctx, account.Username, sess.CreatedAt); err != nil {
		// Roll the session back so a failed login stamp leaves nothing behind.
		if _, delErr := s.sessions.Delete(ctx, token); delErr != nil {
			s.logger.ErrorContext(ctx, "failed to roll back session after login stamp failure",
				slog.String("username", account.Username),
				slog.Any("error", delErr),
				slog.String("component", "auth"),
			)
		}
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	s.logger.InfoContext(ctx, "user authenticated",
		slog.String("username", account.Username),
		slog.String("role", string(account.Role)),
		slog.String("component", "auth"),
	)

	return &UserInfo{
		Username:     account.Username,
		Name:         account.Name,
		Role:         account.Role,
		Organization: account.Organization,
		Email:        account.Email,
		SessionToken: token,
		Capabilities: capabilities,
		Modules:      modules,
	}, nil
}

// CheckPermission reports whether the session behind the token grants the
// capability. A missing or expired session is (false, nil) — absence of
// permission, not a fault; errors are reserved for storage failures. The
// check never extends the session's lifetime.
func (s *Service) CheckPermission(ctx context.Context, token string, capability roles.Capability) (bool, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load session: %w", err)
	}

	return roles.HasCapability(sess.Role, capability), nil
}

// Logout removes the session and reports whether a removal occurred.
// A second call for the same token returns false.
func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	removed, err := s.sessions.Delete(ctx, token)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	return removed, nil
}

// SessionInfo returns the full session record for display purposes.
// Missing and expired sessions both report session.ErrSessionNotFound /
// session.ErrSessionExpired; expired records are evicted as a side effect of
// the lookup.
func (s *Service) SessionInfo(ctx context.Context, token string) (*session.Session, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return sess, nil
}
