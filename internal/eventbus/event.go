package eventbus

import (
	"time"

	"github.com/grachmannico95/ledger-engine/internal/ledger"
)

type EventType string

const (
	EventTypeAction EventType = "action"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

// ActionEvent carries one action submitted to the live ledger.
type ActionEvent struct {
	Action ledger.Action `json:"action"`
	Source string        `json:"source,omitempty"`
}
