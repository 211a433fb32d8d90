package http

import (
	galleryUsecases "github.com/orris-inc/photobooth/internal/application/gallery/usecases"
	mediaUsecases "github.com/orris-inc/photobooth/internal/application/media/usecases"
	photoUsecases "github.com/orris-inc/photobooth/internal/application/photo/usecases"
	"github.com/orris-inc/photobooth/internal/shared/biztime"
)

type allUseCases struct {
	uploadPhoto     *photoUsecases.UploadPhotoUseCase
	renderGallery   *galleryUsecases.RenderGalleryUseCase
	resolveMedia    *mediaUsecases.ResolveMediaUseCase
	listEventPhotos *mediaUsecases.ListEventPhotosUseCase
	cleanupMedia    *mediaUsecases.CleanupMediaUseCase
}

func (c *Container) wireUseCases() *allUseCases {
	media := c.svcs.media
	log := c.log.Named("media")

	return &allUseCases{
		uploadPhoto: photoUsecases.NewUploadPhotoUseCase(
			media,
			c.svcs.sessions,
			c.svcs.settings,
			photoUsecases.UploadOptions{
				MaxBytes:          c.cfg.Media.MaxUploadBytes(),
				ThumbnailsEnabled: c.cfg.Media.ThumbnailsEnabled,
				ThumbnailSize:     c.cfg.Media.ThumbnailSize,
			},
			biztime.NowUTC,
			c.log.Named("photos"),
		),
		renderGallery: galleryUsecases.NewRenderGalleryUseCase(
			c.svcs.sessions,
			c.svcs.markdown,
			galleryUsecases.GalleryOptions{
				Title:          c.cfg.Gallery.Title,
				FooterMarkdown: c.cfg.Gallery.FooterMarkdown,
				Window:         c.cfg.Session.Expiry,
			},
			c.log.Named("gallery"),
		),
		resolveMedia:    mediaUsecases.NewResolveMediaUseCase(media, log),
		listEventPhotos: mediaUsecases.NewListEventPhotosUseCase(media, log),
		cleanupMedia:    mediaUsecases.NewCleanupMediaUseCase(media, log),
	}
}
