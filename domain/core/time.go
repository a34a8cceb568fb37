package core

import "time"

// Timestamp is a UTC wall-clock time used in manifests and logs.
type Timestamp struct {
	time.Time
}

// Now returns the current UTC timestamp.
func Now() Timestamp {
	return Timestamp{time.Now().UTC()}
}

// NewTimestamp wraps a time.Time as a UTC timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC()}
}
