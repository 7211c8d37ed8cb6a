package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamHoverEvents = "globe:hover"
)

// HoverEventMessage - событие подсветки, публикуемое в Redis Stream
type HoverEventMessage struct {
	ID        uuid.UUID      `json:"id"`
	SessionID uuid.UUID      `json:"session_id"`
	Type      HoverEventType `json:"type"`
	Code      string         `json:"code"`
	At        time.Time      `json:"at"`
}
