package models

import (
	"time"

	"gorm.io/datatypes"
)

// SessionModel represents the database persistence model for photo sessions.
type SessionModel struct {
	ID        string              `gorm:"primarykey;size:64"`
	EventSlug string              `gorm:"size:255;not null;index:idx_sessions_event_created,priority:1"`
	Token     string              `gorm:"size:128;not null"`
	CreatedAt time.Time           `gorm:"not null;index:idx_sessions_event_created,priority:2"`
	ExpiresAt time.Time           `gorm:"not null"`
	Photos    []SessionPhotoModel `gorm:"foreignKey:SessionID;references:ID"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// SessionPhotoModel is one row of a session's append-only photo list.
// Rows are ordered by their auto-increment ID.
type SessionPhotoModel struct {
	ID        uint              `gorm:"primarykey"`
	SessionID string            `gorm:"size:64;not null;index:idx_session_photos_session_id"`
	URL       string            `gorm:"size:1024;not null"`
	Metadata  datatypes.JSONMap `gorm:"type:json"`
	CreatedAt time.Time         `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SessionPhotoModel) TableName() string {
	return "session_photos"
}
