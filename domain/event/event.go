// Package event defines the closed set of events delivered over a
// subscriber stream.
package event

import "roomhub/domain"

// DomainEvent is the tagged variant pushed through the broadcaster and into
// per-connection sinks. The set is closed: the gateway switches over the
// concrete types when translating to wire events.
type DomainEvent interface {
	isDomainEvent()
}

// MessagePosted carries a persisted message to every current member of its room.
type MessagePosted struct {
	Message domain.Message
}

// InviteReceived is delivered to the invitee only.
type InviteReceived struct {
	Invitation domain.Invitation
}

// MembershipChanged notifies members of a room that someone joined or left.
type MembershipChanged struct {
	RoomID string
	UserID string
	Joined bool
}

// Gap tells one slow subscriber that Dropped events were discarded from its
// queue and it should resynchronize from history. Generated per session by
// the sink, never broadcast.
type Gap struct {
	Dropped uint64
}

func (MessagePosted) isDomainEvent()     {}
func (InviteReceived) isDomainEvent()    {}
func (MembershipChanged) isDomainEvent() {}
func (Gap) isDomainEvent()               {}
