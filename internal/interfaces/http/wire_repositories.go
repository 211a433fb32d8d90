package http

import (
	"github.com/orris-inc/photobooth/internal/infrastructure/repository"
	"github.com/orris-inc/photobooth/internal/infrastructure/settingsfile"
)

type repositories struct {
	events   *repository.EventRepository
	sessions *repository.SessionRepository
	settings *settingsfile.Store
}

func (c *Container) wireRepositories() *repositories {
	return &repositories{
		events:   repository.NewEventRepository(c.db, c.log),
		sessions: repository.NewSessionRepository(c.db, c.log),
		settings: settingsfile.NewStore(c.cfg.Settings.File, c.log),
	}
}
