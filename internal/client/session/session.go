// Package session owns the persisted auth session: access token, refresh
// token, signed-in user, and token expiry, stored as individual entries in
// the secret store.
package session

import (
	"context"
	"time"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/secrets"
)

// Secret-store keys. Each is written independently: the secret store only
// guarantees single-key atomicity, so a crash mid-save may leave a partial
// session. Load tolerates that: an access token alone is a valid, if
// degraded, session.
const (
	keyAccessToken  = "auth_token"
	keyUser         = "auth_user"
	keyRefreshToken = "auth_refresh_token"
	keyExpiry       = "auth_token_expiry"
)

// Session is the in-memory view of a persisted auth session. A session is
// active iff AccessToken is non-empty.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         string
	ExpiresAt    time.Time
}

// Store reads and writes the session through the secret store. It performs
// no network I/O; its only failure mode is secret-store unavailability,
// which propagates wrapped around secrets.ErrUnavailable.
type Store struct {
	secrets secrets.Store
	now     func() time.Time
}

func NewStore(s secrets.Store) *Store {
	return &Store{secrets: s, now: time.Now}
}

// Save persists a new session, overwriting any previous one. The expiry is
// computed as now + expiresIn seconds and stored as an RFC 3339 UTC string.
// Empty refresh-token/user values remove the corresponding entries so a
// stale credential from an earlier session cannot outlive the overwrite.
func (s *Store) Save(ctx context.Context, accessToken, refreshToken, user string, expiresIn int) error {
	if err := s.secrets.Set(ctx, keyAccessToken, accessToken); err != nil {
		return err
	}

	if refreshToken != "" {
		if err := s.secrets.Set(ctx, keyRefreshToken, refreshToken); err != nil {
			return err
		}
	} else if err := s.secrets.Delete(ctx, keyRefreshToken); err != nil {
		return err
	}

	if user != "" {
		if err := s.secrets.Set(ctx, keyUser, user); err != nil {
			return err
		}
	} else if err := s.secrets.Delete(ctx, keyUser); err != nil {
		return err
	}

	expiresAt := s.now().UTC().Add(time.Duration(expiresIn) * time.Second)
	return s.secrets.Set(ctx, keyExpiry, expiresAt.Format(time.RFC3339))
}

// Load assembles the persisted session. It returns nil when the access-token
// entry is absent or empty. Missing refresh token, user, or expiry entries
// are tolerated; an unparseable expiry is treated as absent.
func (s *Store) Load(ctx context.Context) (*Session, error) {
	accessToken, err := s.secrets.Get(ctx, keyAccessToken)
	if err != nil {
		return nil, err
	}
	if accessToken == "" {
		return nil, nil
	}

	refreshToken, err := s.secrets.Get(ctx, keyRefreshToken)
	if err != nil {
		return nil, err
	}
	user, err := s.secrets.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}

	sess := &Session{AccessToken: accessToken, RefreshToken: refreshToken, User: user}

	if raw, err := s.secrets.Get(ctx, keyExpiry); err != nil {
		return nil, err
	} else if raw != "" {
		if expiresAt, parseErr := time.Parse(time.RFC3339, raw); parseErr == nil {
			sess.ExpiresAt = expiresAt
		}
	}

	return sess, nil
}

// AccessToken returns the stored access token, or "" when logged out.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	return s.secrets.Get(ctx, keyAccessToken)
}

// RefreshToken returns the stored refresh token, or "" when absent.
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.secrets.Get(ctx, keyRefreshToken)
}

// User returns the stored signed-in user identity, or "" when absent.
func (s *Store) User(ctx context.Context) (string, error) {
	return s.secrets.Get(ctx, keyUser)
}

// Clear removes all four session entries unconditionally. It is idempotent
// and succeeds even when nothing was ever stored.
func (s *Store) Clear(ctx context.Context) error {
	for _, key := range []string{keyAccessToken, keyUser, keyRefreshToken, keyExpiry} {
		if err := s.secrets.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
