// Package biztime centralises wall-clock access. All persisted and
// transported timestamps are UTC.
package biztime

import "time"

// FileStampLayout prefixes stored upload names (YYYYMMDD_HHMMSS).
const FileStampLayout = "20060102_150405"

// Clock returns the current instant; usecases take one so tests can pin time.
type Clock func() time.Time

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FileStamp formats t in UTC for use as an upload filename prefix.
func FileStamp(t time.Time) string {
	return t.UTC().Format(FileStampLayout)
}
