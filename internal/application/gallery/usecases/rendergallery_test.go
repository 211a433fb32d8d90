package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
	"github.com/orris-inc/photobooth/internal/shared/services/markdown"
)

type mockAuthenticator struct {
	AuthenticateFunc func(ctx context.Context, sessionID, token string) (*session.Session, error)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, sessionID, token string) (*session.Session, error) {
	return m.AuthenticateFunc(ctx, sessionID, token)
}

func sessionWithPhotos(t *testing.T, urls ...string) *session.Session {
	t.Helper()
	s, err := session.NewSession("sid", "tok", "onlocation", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), time.Hour)
	require.NoError(t, err)
	for _, u := range urls {
		s.AppendPhoto(session.Photo{URL: u})
	}
	return s
}

func TestRenderGalleryUseCase_Execute(t *testing.T) {
	s := sessionWithPhotos(t, "/media/events/onlocation/uploads/a.jpg", "/media/events/onlocation/uploads/b.jpg")
	auth := &mockAuthenticator{
		AuthenticateFunc: func(ctx context.Context, sessionID, token string) (*session.Session, error) {
			if sessionID == "sid" && token == "tok" {
				return s, nil
			}
			return nil, errors.NewNotFoundError("session not found or expired")
		},
	}
	uc := NewRenderGalleryUseCase(auth, markdown.NewMarkdownService(), GalleryOptions{
		Title:          "Party Pics",
		FooterMarkdown: "Thanks for coming! <script>alert(1)</script>",
		Window:         time.Hour,
	}, logger.NewNopLogger())

	body, err := uc.Execute(context.Background(), "sid", "tok")
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "<title>Party Pics</title>")
	assert.Contains(t, html, `<img src="/media/events/onlocation/uploads/a.jpg" alt="Photo 1"`)
	assert.Contains(t, html, `<img src="/media/events/onlocation/uploads/b.jpg" alt="Photo 2"`)
	assert.Less(t, strings.Index(html, "a.jpg"), strings.Index(html, "b.jpg"))
	assert.Contains(t, html, "Available for 1 hour")
	assert.Contains(t, html, "Thanks for coming!")
	assert.NotContains(t, html, "<script>")

	_, err = uc.Execute(context.Background(), "sid", "wrong")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRenderGalleryUseCase_EscapesURLs(t *testing.T) {
	s := sessionWithPhotos(t, `/media/x.jpg" onerror="alert(1)`, "javascript:alert(1)")
	auth := &mockAuthenticator{
		AuthenticateFunc: func(ctx context.Context, sessionID, token string) (*session.Session, error) {
			return s, nil
		},
	}
	uc := NewRenderGalleryUseCase(auth, nil, GalleryOptions{Window: time.Hour}, logger.NewNopLogger())

	body, err := uc.Execute(context.Background(), "sid", "tok")
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "<title>Your Photobooth Photos</title>")
	assert.NotContains(t, html, `onerror="alert(1)`)
	assert.NotContains(t, html, `src="javascript:`)
	assert.NotContains(t, html, "<footer")
}

func TestHumanizeWindow(t *testing.T) {
	tests := map[time.Duration]string{
		time.Hour:        "1 hour",
		3 * time.Hour:    "3 hours",
		90 * time.Minute: "90 minutes",
		time.Minute:      "1 minute",
		48 * time.Hour:   "2 days",
		90 * time.Second: "1m30s",
		0:                "a limited time",
	}
	for d, want := range tests {
		assert.Equal(t, want, HumanizeWindow(d), d.String())
	}
}
