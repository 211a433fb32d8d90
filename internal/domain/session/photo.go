package session

import "time"

// Photo is one entry of a session's append-only photo list.
type Photo struct {
	URL         string
	ContentType string
	Size        int64
	CreatedAt   time.Time
}
