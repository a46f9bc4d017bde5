package models

import "time"

// EventLog represents a system event log entry.
type EventLog struct {
	ID        int64     `json:"id"`
	EventType string    `json:"event_type"` // directory, system
	Level     string    `json:"level"`      // info, warning, error
	Message   string    `json:"message"`
	Metadata  string    `json:"metadata,omitempty"` // JSON-encoded additional data
	CreatedAt time.Time `json:"created_at"`
}
