package session

import (
	"crypto/subtle"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Session is a time-boxed, token protected photo album tied to an event.
type Session struct {
	id        string
	eventSlug string
	token     string
	createdAt time.Time
	expiresAt time.Time
	photos    []Photo
}

// NewSession starts a session at now that expires after window.
func NewSession(id, token, eventSlug string, now time.Time, window time.Duration) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("session ID is required")
	}
	if token == "" {
		return nil, fmt.Errorf("session token is required")
	}
	if eventSlug == "" {
		return nil, fmt.Errorf("event slug is required")
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	now = now.UTC()
	return &Session{
		id:        id,
		eventSlug: eventSlug,
		token:     token,
		createdAt: now,
		expiresAt: now.Add(window),
		photos:    []Photo{},
	}, nil
}

// ReconstructSession rebuilds a session from persistence; photos must be in
// insertion order.
func ReconstructSession(
	id, eventSlug, token string,
	createdAt, expiresAt time.Time,
	photos []Photo,
) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("session ID is required")
	}
	if photos == nil {
		photos = []Photo{}
	}

	return &Session{
		id:        id,
		eventSlug: eventSlug,
		token:     token,
		createdAt: createdAt,
		expiresAt: expiresAt,
		photos:    photos,
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) EventSlug() string {
	return s.eventSlug
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// Photos returns a copy of the photo list.
func (s *Session) Photos() []Photo {
	out := make([]Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

// PhotoURLs returns the photo URLs in insertion order.
func (s *Session) PhotoURLs() []string {
	urls := make([]string, 0, len(s.photos))
	for _, p := range s.photos {
		urls = append(urls, p.URL)
	}
	return urls
}

// IsExpired reports whether now is strictly after expires_at.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.expiresAt)
}

func (s *Session) Status(now time.Time) Status {
	if s.IsExpired(now) {
		return StatusExpired
	}
	return StatusActive
}

// TokenMatches compares candidate with the stored token in constant time.
// An empty candidate never matches.
func (s *Session) TokenMatches(candidate string) bool {
	if candidate == "" || s.token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(s.token)) == 1
}

// AppendPhoto adds a photo to the in-memory list.
func (s *Session) AppendPhoto(p Photo) {
	s.photos = append(s.photos, p)
}

// RegenerateToken replaces the token and restarts the expiry window from now.
func (s *Session) RegenerateToken(token string, now time.Time, window time.Duration) error {
	if token == "" {
		return fmt.Errorf("session token is required")
	}
	if token == s.token {
		return fmt.Errorf("regenerated token must differ from the current one")
	}
	if window <= 0 {
		return ErrInvalidWindow
	}
	s.token = token
	s.expiresAt = now.UTC().Add(window)
	return nil
}

// GalleryURL builds <baseURL>/gallery/<id>?token=<token>.
func (s *Session) GalleryURL(baseURL string) string {
	return fmt.Sprintf("%s/gallery/%s?token=%s",
		strings.TrimRight(baseURL, "/"),
		url.PathEscape(s.id),
		url.QueryEscape(s.token),
	)
}
