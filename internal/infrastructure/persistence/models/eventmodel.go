package models

import "time"

// EventModel represents the database persistence model for events.
type EventModel struct {
	ID        uint      `gorm:"primarykey"`
	Name      string    `gorm:"size:255;not null"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex:idx_events_slug"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string {
	return "events"
}
