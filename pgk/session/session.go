package session

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/payingzee/sellerpanel/internal/model"
)

// TokenSource yields the bearer credential attached to every seller API
// request. Injected so tests can substitute it.
type TokenSource interface {
	Token() (string, error)
}

// Info is what can be read out of the stored credential without holding
// the backend's signing secret.
type Info struct {
	Seller    string
	ExpiresAt time.Time
}

// FileStore reads the bearer token from a single file under a fixed path,
// the panel's stand-in for browser local storage. The file is re-read on
// every request so an externally refreshed token is picked up without a
// restart.
type FileStore struct {
	path string
	now  func() time.Time
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		now:  time.Now,
	}
}

// Token returns the stored credential. A token that parses as a JWT with
// an expiry in the past is refused before any network call is made.
func (s *FileStore) Token() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", model.ErrSessionExpired
	}

	info, err := Inspect(token)
	if err != nil {
		// Opaque (non-JWT) tokens pass through untouched.
		return token, nil
	}

	if !info.ExpiresAt.IsZero() && info.ExpiresAt.Before(s.now()) {
		return "", model.ErrSessionExpired
	}

	return token, nil
}

// Info exposes the seller identity carried by the stored token, when there
// is one, for display in the dashboard shell.
func (s *FileStore) Info() *Info {
	token, err := s.Token()
	if err != nil {
		return nil
	}

	info, err := Inspect(token)
	if err != nil {
		return nil
	}

	return info
}

// Inspect decodes the token's registered claims without verifying the
// signature; the panel holds no signing secret, so the claims are display
// hints only and the backend remains the authority.
func Inspect(token string) (*Info, error) {
	claims := &jwt.RegisteredClaims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	info := &Info{Seller: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}

	return info, nil
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() (string, error)

func (f TokenFunc) Token() (string, error) {
	return f()
}
