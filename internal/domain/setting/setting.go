package setting

import (
	"encoding/json"
	"strings"
)

// Well-known document keys. Any other key is carried through untouched.
const (
	KeyMediaRoot         = "media_root"
	KeyDefaultEventSlug  = "default_event_slug"
	KeyAdminPasswordHash = "admin_password_hash"
)

// Document is the raw settings record. Values stay encoded so that fields
// written by other tools survive a rewrite byte for byte.
type Document map[string]json.RawMessage

// String returns the string value stored under key, or "" when the key is
// missing or not a JSON string.
func (d Document) String(key string) string {
	raw, ok := d[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// SetString stores a string value under key.
func (d Document) SetString(key, value string) {
	raw, _ := json.Marshal(value)
	d[key] = raw
}

// Clone returns a shallow copy; RawMessage values are never mutated in place.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Defaults fill blank fields of the document.
type Defaults struct {
	MediaRoot        string
	DefaultEventSlug string
}

// Settings is the merged view of the document and Defaults.
type Settings struct {
	mediaRoot         string
	defaultEventSlug  string
	adminPasswordHash string
}

// FromDocument merges doc over defaults. Blank values fall back to the
// default.
func FromDocument(doc Document, defaults Defaults) *Settings {
	return &Settings{
		mediaRoot:         orDefault(doc.String(KeyMediaRoot), defaults.MediaRoot),
		defaultEventSlug:  orDefault(doc.String(KeyDefaultEventSlug), defaults.DefaultEventSlug),
		adminPasswordHash: strings.TrimSpace(doc.String(KeyAdminPasswordHash)),
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func (s *Settings) MediaRoot() string {
	return s.mediaRoot
}

func (s *Settings) DefaultEventSlug() string {
	return s.defaultEventSlug
}

func (s *Settings) AdminPasswordHash() string {
	return s.adminPasswordHash
}

// HasPassword reports whether an admin password hash is stored.
func (s *Settings) HasPassword() bool {
	return s.adminPasswordHash != ""
}
