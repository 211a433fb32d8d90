package usecases

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/orris-inc/photobooth/internal/domain/session"
)

type mockSessionRepository struct {
	CreateFunc          func(ctx context.Context, s *session.Session) error
	GetByIDFunc         func(ctx context.Context, id string) (*session.Session, error)
	AppendPhotoFunc     func(ctx context.Context, sessionID string, photo session.Photo) error
	UpdateTokenFunc     func(ctx context.Context, s *session.Session) error
	ListByEventSlugFunc func(ctx context.Context, eventSlug string) ([]*session.Session, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, s *session.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, id string) (*session.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, session.ErrSessionNotFound
}

func (m *mockSessionRepository) AppendPhoto(ctx context.Context, sessionID string, photo session.Photo) error {
	if m.AppendPhotoFunc != nil {
		return m.AppendPhotoFunc(ctx, sessionID, photo)
	}
	return nil
}

func (m *mockSessionRepository) UpdateToken(ctx context.Context, s *session.Session) error {
	if m.UpdateTokenFunc != nil {
		return m.UpdateTokenFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) ListByEventSlug(ctx context.Context, eventSlug string) ([]*session.Session, error) {
	if m.ListByEventSlugFunc != nil {
		return m.ListByEventSlugFunc(ctx, eventSlug)
	}
	return nil, nil
}

type storedSession struct {
	id, eventSlug, token string
	createdAt, expiresAt time.Time
	photos               []session.Photo
}

func (r storedSession) reconstruct() *session.Session {
	photos := make([]session.Photo, len(r.photos))
	copy(photos, r.photos)
	s, _ := session.ReconstructSession(r.id, r.eventSlug, r.token, r.createdAt, r.expiresAt, photos)
	return s
}

// newMemorySessionRepository stores sessions by value, like a database.
func newMemorySessionRepository() *mockSessionRepository {
	var mu sync.Mutex
	rows := map[string]*storedSession{}

	return &mockSessionRepository{
		CreateFunc: func(ctx context.Context, s *session.Session) error {
			mu.Lock()
			defer mu.Unlock()
			rows[s.ID()] = &storedSession{
				id:        s.ID(),
				eventSlug: s.EventSlug(),
				token:     s.Token(),
				createdAt: s.CreatedAt(),
				expiresAt: s.ExpiresAt(),
			}
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id string) (*session.Session, error) {
			mu.Lock()
			defer mu.Unlock()
			row, ok := rows[id]
			if !ok {
				return nil, session.ErrSessionNotFound
			}
			return row.reconstruct(), nil
		},
		AppendPhotoFunc: func(ctx context.Context, sessionID string, photo session.Photo) error {
			mu.Lock()
			defer mu.Unlock()
			row, ok := rows[sessionID]
			if !ok {
				return session.ErrSessionNotFound
			}
			row.photos = append(row.photos, photo)
			return nil
		},
		UpdateTokenFunc: func(ctx context.Context, s *session.Session) error {
			mu.Lock()
			defer mu.Unlock()
			row, ok := rows[s.ID()]
			if !ok {
				return session.ErrSessionNotFound
			}
			row.token = s.Token()
			row.expiresAt = s.ExpiresAt()
			return nil
		},
		ListByEventSlugFunc: func(ctx context.Context, eventSlug string) ([]*session.Session, error) {
			mu.Lock()
			defer mu.Unlock()
			var out []*session.Session
			for _, row := range rows {
				if row.eventSlug == eventSlug {
					out = append(out, row.reconstruct())
				}
			}
			sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
			return out, nil
		},
	}
}

// sequentialTokens hands out predictable ids and tokens.
type sequentialTokens struct {
	n int
}

func (g *sequentialTokens) NewSessionID() (string, error) {
	g.n++
	return fmt.Sprintf("sid-%d", g.n), nil
}

func (g *sequentialTokens) NewSessionToken() (string, error) {
	g.n++
	return fmt.Sprintf("tok-%d", g.n), nil
}

type staticDefaultSlug string

func (s staticDefaultSlug) DefaultEventSlug(ctx context.Context) string {
	return string(s)
}

// testClock is a settable time source.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var errDB = errors.New("database is locked")

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}
