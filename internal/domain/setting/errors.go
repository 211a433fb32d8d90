package setting

import "errors"

var (
	// ErrCorruptDocument is returned when the settings file exists but is not
	// a JSON object
	ErrCorruptDocument = errors.New("settings document is corrupt")
)
