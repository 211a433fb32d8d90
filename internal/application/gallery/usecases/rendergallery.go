package usecases

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

//go:embed templates/gallery.html
var templateFS embed.FS

var galleryTemplate = template.Must(
	template.New("gallery.html").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		ParseFS(templateFS, "templates/gallery.html"),
)

// SessionAuthenticator performs the public, token checked session lookup.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, sessionID, token string) (*session.Session, error)
}

// MarkdownRenderer converts Markdown into sanitized HTML.
type MarkdownRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type GalleryOptions struct {
	Title          string
	FooterMarkdown string
	Window         time.Duration
}

type galleryPage struct {
	Title        string
	PhotoURLs    []string
	Availability string
	ExpiresAt    string
	Footer       template.HTML
}

// RenderGalleryUseCase renders the shareable HTML page of a session.
type RenderGalleryUseCase struct {
	sessions SessionAuthenticator
	title    string
	footer   template.HTML
	window   time.Duration
	logger   logger.Interface
}

func NewRenderGalleryUseCase(
	sessions SessionAuthenticator,
	markdown MarkdownRenderer,
	opts GalleryOptions,
	logger logger.Interface,
) *RenderGalleryUseCase {
	uc := &RenderGalleryUseCase{
		sessions: sessions,
		title:    opts.Title,
		window:   opts.Window,
		logger:   logger,
	}
	if uc.title == "" {
		uc.title = "Your Photobooth Photos"
	}

	if opts.FooterMarkdown != "" && markdown != nil {
		html, err := markdown.ToHTMLSanitized(opts.FooterMarkdown)
		if err != nil {
			logger.Warnw("gallery footer markdown could not be rendered", "error", err)
		} else {
			// already sanitized
			uc.footer = template.HTML(html)
		}
	}
	return uc
}

// Execute authenticates the session and renders its photos in order.
func (uc *RenderGalleryUseCase) Execute(ctx context.Context, sessionID, token string) ([]byte, error) {
	s, err := uc.sessions.Authenticate(ctx, sessionID, token)
	if err != nil {
		return nil, err
	}

	page := galleryPage{
		Title:        uc.title,
		PhotoURLs:    s.PhotoURLs(),
		Availability: HumanizeWindow(uc.window),
		ExpiresAt:    s.ExpiresAt().UTC().Format(time.RFC3339),
		Footer:       uc.footer,
	}

	var buf bytes.Buffer
	if err := galleryTemplate.Execute(&buf, page); err != nil {
		uc.logger.Errorw("failed to render gallery", "session_id", sessionID, "error", err)
		return nil, errors.NewInternalError("failed to render gallery")
	}
	return buf.Bytes(), nil
}

// HumanizeWindow formats d as "1 hour", "90 minutes" or "2 days".
func HumanizeWindow(d time.Duration) string {
	switch {
	case d <= 0:
		return "a limited time"
	case d%(24*time.Hour) == 0:
		return plural(int(d/(24*time.Hour)), "day")
	case d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	case d%time.Minute == 0:
		return plural(int(d/time.Minute), "minute")
	default:
		return d.String()
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
