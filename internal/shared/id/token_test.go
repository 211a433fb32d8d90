package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var urlSafe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func TestNewSessionID(t *testing.T) {
	sid, err := NewSessionID()
	require.NoError(t, err)
	assert.Len(t, sid, 22)
	assert.Regexp(t, urlSafe, sid)
}

func TestNewSessionToken(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		tok, err := NewSessionToken()
		require.NoError(t, err)
		assert.Len(t, tok, 43)
		assert.Regexp(t, urlSafe, tok)
		_, dup := seen[tok]
		assert.False(t, dup)
		seen[tok] = struct{}{}
	}
}
