package usecases

import (
	"context"
	"errors"

	"github.com/orris-inc/photobooth/internal/domain/setting"
)

type mockSettingRepository struct {
	LoadFunc func(ctx context.Context) (setting.Document, error)
	SaveFunc func(ctx context.Context, doc setting.Document) error
}

func (m *mockSettingRepository) Load(ctx context.Context) (setting.Document, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return setting.Document{}, nil
}

func (m *mockSettingRepository) Save(ctx context.Context, doc setting.Document) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, doc)
	}
	return nil
}

// newMemoryRepository returns a mock that keeps the last saved document.
func newMemoryRepository(initial setting.Document) *mockSettingRepository {
	stored := initial
	if stored == nil {
		stored = setting.Document{}
	}
	return &mockSettingRepository{
		LoadFunc: func(ctx context.Context) (setting.Document, error) {
			return stored.Clone(), nil
		},
		SaveFunc: func(ctx context.Context, doc setting.Document) error {
			stored = doc.Clone()
			return nil
		},
	}
}

type mockHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) bool {
	return hash == "hashed:"+password
}

var errDisk = errors.New("disk full")

var testDefaults = setting.Defaults{
	MediaRoot:        "./media",
	DefaultEventSlug: "onlocation",
}
