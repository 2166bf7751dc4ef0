// Package domain contains core concepts of the chat system.
// Messages are immutable and append-only.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is one immutable chat entry. Sequence is allocated per room and
// strictly increasing; it defines the delivery order every subscriber of the
// room observes.
type Message struct {
	ID        uuid.UUID
	RoomID    string
	AuthorID  string
	Text      string
	Sequence  uint64
	CreatedAt time.Time
}
