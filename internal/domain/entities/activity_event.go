package entities

import "time"

// ActivityEvent is one line of the write-only activity side-channel.
type ActivityEvent struct {
	ID       string     `json:"id"`
	At       time.Time  `json:"at"`
	Kind     EntityKind `json:"kind,omitempty"`
	EntityID string     `json:"entity_id,omitempty"`
	Action   string     `json:"action"`
	Outcome  string     `json:"outcome"`
	Detail   string     `json:"detail,omitempty"`
}
