package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		slug    string
		wantErr error
	}{
		{name: "valid", input: "Summer Party", slug: "summer-party"},
		{name: "trims name", input: "  Gala  ", slug: "gala"},
		{name: "blank name", input: "   ", slug: "x", wantErr: ErrEmptyName},
		{name: "bad slug", input: "Gala", slug: "../gala", wantErr: ErrInvalidSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEvent(tt.input, tt.slug, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.slug, e.Slug())
			assert.Equal(t, now, e.CreatedAt())
			assert.Zero(t, e.ID())
		})
	}
}

func TestEventSetID(t *testing.T) {
	e, err := NewEvent("Gala", "gala", time.Now())
	require.NoError(t, err)

	assert.Error(t, e.SetID(0))
	require.NoError(t, e.SetID(7))
	assert.Equal(t, uint(7), e.ID())
	assert.Error(t, e.SetID(8))
}

func TestReconstructEvent(t *testing.T) {
	_, err := ReconstructEvent(0, "x", "x", time.Now())
	assert.Error(t, err)

	e, err := ReconstructEvent(3, "On Location", DefaultSlug, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "On Location", e.Name())
}
