package session

// Status is derived at read time from expires_at.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusExpired Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}
