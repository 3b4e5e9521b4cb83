package events

import (
	"time"

	"github.com/google/uuid"
)

// Type labels the detection lifecycle moments worth streaming downstream
// (analytics, benefit triggers).
type Type string

const (
	TypeDetected         Type = "store.detected"
	TypeConfirmed        Type = "store.confirmed"
	TypeSelectedManually Type = "store.selected_manually"
)

// Event is emitted from detection logic. Keep it transport-agnostic so sinks
// can fan out without knowing about the engine.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       Type      `json:"type"`
	StoreID    string    `json:"store_id,omitempty"`
	Method     string    `json:"method,omitempty"`
	Confidence int       `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}
