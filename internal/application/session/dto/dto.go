package dto

import (
	"time"

	"github.com/orris-inc/photobooth/internal/domain/session"
)

type CreateSessionRequest struct {
	EventSlug string `json:"event_slug" binding:"omitempty,max=200,eventslug"`
}

type SessionResponse struct {
	ID         string    `json:"id"`
	EventSlug  string    `json:"event_slug"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	Status     string    `json:"status"`
	PhotoURLs  []string  `json:"photo_urls"`
	GalleryURL string    `json:"gallery_url"`
	Token      string    `json:"token"`
}

type SessionListResponse struct {
	Sessions []*SessionResponse `json:"sessions"`
}

// ToSessionResponse renders s as seen at now. The gallery URL is built from
// baseURL.
func ToSessionResponse(s *session.Session, baseURL string, now time.Time) *SessionResponse {
	if s == nil {
		return nil
	}
	return &SessionResponse{
		ID:         s.ID(),
		EventSlug:  s.EventSlug(),
		CreatedAt:  s.CreatedAt(),
		ExpiresAt:  s.ExpiresAt(),
		Status:     s.Status(now).String(),
		PhotoURLs:  s.PhotoURLs(),
		GalleryURL: s.GalleryURL(baseURL),
		Token:      s.Token(),
	}
}

func ToSessionListResponse(sessions []*session.Session, baseURL string, now time.Time) *SessionListResponse {
	out := make([]*SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, ToSessionResponse(s, baseURL, now))
	}
	return &SessionListResponse{Sessions: out}
}
