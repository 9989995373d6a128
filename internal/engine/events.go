package engine

import "time"

const (
	EventActiveDrop     = "active_drop"
	EventScheduledDrops = "scheduled_drops"
	EventCompletedDrops = "completed_drops"
	EventStatusChange   = "status_change"
	EventRefreshNeeded  = "refresh_needed"
	EventHeartbeat      = "heartbeat"
)

const (
	ChangePromoted  = "promoted"
	ChangeCompleted = "completed"
	ChangeCleared   = "cleared"
)

type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type StatusChange struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}
