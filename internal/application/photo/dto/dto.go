package dto

import sessiondto "github.com/orris-inc/photobooth/internal/application/session/dto"

// UploadPhotoResponse describes a stored upload. Session is set when the
// upload was attached to one.
type UploadPhotoResponse struct {
	URL          string                      `json:"url"`
	Path         string                      `json:"path"`
	ContentType  string                      `json:"content_type"`
	Size         int                         `json:"size"`
	ThumbnailURL string                      `json:"thumbnail_url,omitempty"`
	Session      *sessiondto.SessionResponse `json:"session,omitempty"`
}
