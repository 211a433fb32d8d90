package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventdto "github.com/orris-inc/photobooth/internal/application/event/dto"
	"github.com/orris-inc/photobooth/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/photobooth/internal/shared/errors"
)

func TestEventHandler_CreateEvent(t *testing.T) {
	var gotName string
	svc := &mockEventService{
		createFunc: func(ctx context.Context, name string) (*eventdto.EventResponse, error) {
			gotName = name
			return &eventdto.EventResponse{ID: 2, Name: name, Slug: "summer-party-2024", CreatedAt: time.Now().UTC()}, nil
		},
	}
	h := NewEventHandler(svc, &mockPhotoLister{}, testLogger)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/settings/events", map[string]string{"name": "Summer Party 2024"})
	h.CreateEvent(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Summer Party 2024", gotName)
	var got eventdto.EventResponse
	testutil.DecodeData(t, w, &got)
	assert.Equal(t, "summer-party-2024", got.Slug)

	gotName = ""
	c, w = testutil.NewTestContext(http.MethodPost, "/api/v1/settings/events", map[string]string{})
	h.CreateEvent(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, gotName)
}

func TestEventHandler_ListAndGet(t *testing.T) {
	onlocation := &eventdto.EventResponse{ID: 1, Name: "On Location", Slug: "onlocation"}
	svc := &mockEventService{
		listFunc: func(ctx context.Context) ([]*eventdto.EventResponse, error) {
			return []*eventdto.EventResponse{onlocation}, nil
		},
		getFunc: func(ctx context.Context, slug string) (*eventdto.EventResponse, error) {
			if slug == "onlocation" {
				return onlocation, nil
			}
			return nil, errors.NewNotFoundError("event not found")
		},
	}
	h := NewEventHandler(svc, &mockPhotoLister{}, testLogger)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/settings/events", nil)
	h.ListEvents(c)
	require.Equal(t, http.StatusOK, w.Code)
	var list []eventdto.EventResponse
	testutil.DecodeData(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "onlocation", list[0].Slug)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/v1/settings/events/onlocation", nil)
	testutil.SetURLParam(c, "slug", "onlocation")
	h.GetEvent(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/v1/settings/events/nope", nil)
	testutil.SetURLParam(c, "slug", "nope")
	h.GetEvent(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEventHandler_ListEventPhotos(t *testing.T) {
	lister := &mockPhotoLister{photos: []string{"/media/events/onlocation/uploads/b.jpg", "/media/events/onlocation/uploads/a.jpg"}}
	h := NewEventHandler(&mockEventService{}, lister, testLogger)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/settings/events/onlocation/photos", nil)
	testutil.SetURLParam(c, "slug", "onlocation")
	h.ListEventPhotos(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Photos []string `json:"photos"`
	}
	testutil.DecodeData(t, w, &got)
	assert.Equal(t, lister.photos, got.Photos)

	lister.err = errors.NewValidationError("invalid event slug")
	c, w = testutil.NewTestContext(http.MethodGet, "/api/v1/settings/events/x/photos", nil)
	testutil.SetURLParam(c, "slug", "x")
	h.ListEventPhotos(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
