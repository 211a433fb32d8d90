package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
	"github.com/orris-inc/photobooth/internal/shared/errors"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// maxSlugAttempts bounds the -N suffix search.
const maxSlugAttempts = 10000

type CreateEventUseCase struct {
	eventRepo event.Repository
	sanitizer NameSanitizer
	cache     EventCache
	clock     biztime.Clock
	logger    logger.Interface
}

func NewCreateEventUseCase(
	eventRepo event.Repository,
	sanitizer NameSanitizer,
	cache EventCache,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateEventUseCase {
	return &CreateEventUseCase{
		eventRepo: eventRepo,
		sanitizer: sanitizer,
		cache:     cache,
		clock:     clock,
		logger:    logger,
	}
}

// Execute creates an event named name. The slug is derived from the name
// and suffixed with -1, -2, ... until it is unused.
func (uc *CreateEventUseCase) Execute(ctx context.Context, name string) (*event.Event, error) {
	if uc.sanitizer != nil {
		name = uc.sanitizer.StripTags(name)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("event name is required")
	}

	base := event.Slugify(name)

	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug := event.CandidateSlug(base, attempt)

		exists, err := uc.eventRepo.SlugExists(ctx, slug)
		if err != nil {
			uc.logger.Errorw("failed to check event slug", "slug", slug, "error", err)
			return nil, errors.NewStorageError("failed to create event", err)
		}
		if exists {
			continue
		}

		e, err := event.NewEvent(name, slug, uc.clock())
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		err = uc.eventRepo.Create(ctx, e)
		if stderrors.Is(err, event.ErrSlugTaken) {
			// lost a race with a concurrent create
			continue
		}
		if err != nil {
			uc.logger.Errorw("failed to create event", "slug", slug, "error", err)
			return nil, errors.NewStorageError("failed to create event", err)
		}

		if uc.cache != nil {
			uc.cache.Set(e)
		}
		uc.logger.Infow("event created", "id", e.ID(), "slug", e.Slug())
		return e, nil
	}

	return nil, errors.NewInternalError("no free slug for event", base)
}
