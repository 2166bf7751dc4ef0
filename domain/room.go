package domain

import "time"

type Visibility string

const (
	VisibilityPublic     Visibility = "public"
	VisibilityInviteOnly Visibility = "invite-only"
)

// Room groups members for message exchange. Rooms are never hard-deleted:
// a room whose last member leaves is soft-closed so its history stays
// addressable.
type Room struct {
	ID         string
	Name       string
	Visibility Visibility
	CreatorID  string
	CreatedAt  time.Time
	Closed     bool
}

// Membership records that a user belongs to a room. A user appears at most
// once per room.
type Membership struct {
	RoomID   string
	UserID   string
	JoinedAt time.Time
}
