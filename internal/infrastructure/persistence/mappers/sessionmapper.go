package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/orris-inc/photobooth/internal/domain/session"
	"github.com/orris-inc/photobooth/internal/infrastructure/persistence/models"
)

const (
	metaContentType = "content_type"
	metaSize        = "size"
)

// SessionMapper handles the conversion between Session domain entities and persistence models.
type SessionMapper interface {
	// ToModel converts the session row; photos are persisted separately.
	ToModel(entity *session.Session) *models.SessionModel

	// ToDomain converts a model with its preloaded photos.
	ToDomain(model *models.SessionModel) (*session.Session, error)

	ToPhotoModel(sessionID string, photo session.Photo) *models.SessionPhotoModel
}

type SessionMapperImpl struct{}

func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

func (m *SessionMapperImpl) ToModel(entity *session.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}
	return &models.SessionModel{
		ID:        entity.ID(),
		EventSlug: entity.EventSlug(),
		Token:     entity.Token(),
		CreatedAt: entity.CreatedAt(),
		ExpiresAt: entity.ExpiresAt(),
	}
}

func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) (*session.Session, error) {
	if model == nil {
		return nil, nil
	}

	photos := make([]session.Photo, 0, len(model.Photos))
	for _, p := range model.Photos {
		photos = append(photos, session.Photo{
			URL:         p.URL,
			ContentType: metaString(p.Metadata, metaContentType),
			Size:        metaInt(p.Metadata, metaSize),
			CreatedAt:   p.CreatedAt.UTC(),
		})
	}

	s, err := session.ReconstructSession(
		model.ID,
		model.EventSlug,
		model.Token,
		model.CreatedAt.UTC(),
		model.ExpiresAt.UTC(),
		photos,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct session: %w", err)
	}
	return s, nil
}

func (m *SessionMapperImpl) ToPhotoModel(sessionID string, photo session.Photo) *models.SessionPhotoModel {
	meta := datatypes.JSONMap{}
	if photo.ContentType != "" {
		meta[metaContentType] = photo.ContentType
	}
	if photo.Size > 0 {
		meta[metaSize] = photo.Size
	}
	return &models.SessionPhotoModel{
		SessionID: sessionID,
		URL:       photo.URL,
		Metadata:  meta,
		CreatedAt: photo.CreatedAt,
	}
}

func metaString(meta datatypes.JSONMap, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

func metaInt(meta datatypes.JSONMap, key string) int64 {
	switch v := meta[key].(type) {
	case json.Number:
		n, _ := v.Int64()
		return n
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}
