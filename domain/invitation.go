package domain

import "time"

type InviteStatus string

const (
	InvitePending  InviteStatus = "pending"
	InviteAccepted InviteStatus = "accepted"
	InviteDeclined InviteStatus = "declined"
)

// Invitation is a durable offer to join an invite-only room. Transitions out
// of pending are terminal.
type Invitation struct {
	ID        string
	RoomID    string
	InviterID string
	InviteeID string
	Status    InviteStatus
	CreatedAt time.Time
}
