package identity

import (
	"time"

	"github.com/google/uuid"
)

// ISOMillis is the timestamp layout used for record createdAt stamps:
// UTC with millisecond precision and a "Z" suffix.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// NewID returns a collision-resistant record identifier.
func NewID() string {
	return uuid.NewString()
}

// NowISO returns the current time formatted for createdAt stamping.
func NowISO() string {
	return FormatISO(time.Now())
}

// FormatISO formats an arbitrary instant the same way NowISO does.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOMillis)
}
