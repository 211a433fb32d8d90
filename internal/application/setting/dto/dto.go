package dto

import "github.com/orris-inc/photobooth/internal/domain/setting"

// SettingsResponse is the admin view of the settings. The password hash is
// never exposed.
type SettingsResponse struct {
	MediaRoot        string `json:"media_root"`
	DefaultEventSlug string `json:"default_event_slug"`
	HasPassword      bool   `json:"has_password"`
}

// UpdateSettingsRequest carries only the fields to change.
type UpdateSettingsRequest struct {
	MediaRoot        *string `json:"media_root"`
	DefaultEventSlug *string `json:"default_event_slug"`
}

type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

type VerifyPasswordResponse struct {
	Valid     bool   `json:"valid"`
	Token     string `json:"token,omitempty"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func ToSettingsResponse(s *setting.Settings) *SettingsResponse {
	if s == nil {
		return nil
	}
	return &SettingsResponse{
		MediaRoot:        s.MediaRoot(),
		DefaultEventSlug: s.DefaultEventSlug(),
		HasPassword:      s.HasPassword(),
	}
}
