package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/orris-inc/photobooth/internal/domain/event"
)

type mockEventRepository struct {
	ListFunc           func(ctx context.Context) ([]*event.Event, error)
	GetBySlugFunc      func(ctx context.Context, slug string) (*event.Event, error)
	SlugExistsFunc     func(ctx context.Context, slug string) (bool, error)
	CreateFunc         func(ctx context.Context, e *event.Event) error
	CreateIfAbsentFunc func(ctx context.Context, e *event.Event) error
}

func (m *mockEventRepository) List(ctx context.Context) ([]*event.Event, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockEventRepository) GetBySlug(ctx context.Context, slug string) (*event.Event, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, event.ErrEventNotFound
}

func (m *mockEventRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug)
	}
	return false, nil
}

func (m *mockEventRepository) Create(ctx context.Context, e *event.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockEventRepository) CreateIfAbsent(ctx context.Context, e *event.Event) error {
	if m.CreateIfAbsentFunc != nil {
		return m.CreateIfAbsentFunc(ctx, e)
	}
	return nil
}

// newMemoryEventRepository keeps events in a slug-keyed map.
func newMemoryEventRepository() *mockEventRepository {
	var mu sync.Mutex
	bySlug := map[string]*event.Event{}
	nextID := uint(1)

	insert := func(e *event.Event) {
		_ = e.SetID(nextID)
		nextID++
		bySlug[e.Slug()] = e
	}

	return &mockEventRepository{
		GetBySlugFunc: func(ctx context.Context, slug string) (*event.Event, error) {
			mu.Lock()
			defer mu.Unlock()
			if e, ok := bySlug[slug]; ok {
				return e, nil
			}
			return nil, event.ErrEventNotFound
		},
		SlugExistsFunc: func(ctx context.Context, slug string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			_, ok := bySlug[slug]
			return ok, nil
		},
		CreateFunc: func(ctx context.Context, e *event.Event) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := bySlug[e.Slug()]; ok {
				return event.ErrSlugTaken
			}
			insert(e)
			return nil
		},
		CreateIfAbsentFunc: func(ctx context.Context, e *event.Event) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := bySlug[e.Slug()]; !ok {
				insert(e)
			}
			return nil
		},
	}
}

type mockEventCache struct {
	items map[string]*event.Event
	hits  int
}

func newMockEventCache() *mockEventCache {
	return &mockEventCache{items: map[string]*event.Event{}}
}

func (c *mockEventCache) Get(slug string) (*event.Event, bool) {
	e, ok := c.items[slug]
	if ok {
		c.hits++
	}
	return e, ok
}

func (c *mockEventCache) Set(e *event.Event) {
	c.items[e.Slug()] = e
}

type stripAngles struct{}

func (stripAngles) StripTags(s string) string {
	out := []rune{}
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out = append(out, r)
		}
	}
	return string(out)
}

var (
	errDB     = errors.New("database is locked")
	fixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

func fixedClock() time.Time { return fixedTime }
