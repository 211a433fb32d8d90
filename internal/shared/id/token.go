// Package id generates the random identifiers and secrets handed to clients.
package id

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const (
	// SessionIDBytes is the entropy of a session identifier.
	SessionIDBytes = 16
	// SessionTokenBytes is the entropy of a gallery access token.
	SessionTokenBytes = 32
)

// URLSafe returns n random bytes encoded as unpadded base64url.
func URLSafe(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// NewSessionID returns a fresh session identifier.
func NewSessionID() (string, error) {
	return URLSafe(SessionIDBytes)
}

// NewSessionToken returns a fresh gallery token.
func NewSessionToken() (string, error) {
	return URLSafe(SessionTokenBytes)
}
