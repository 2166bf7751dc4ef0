// Package workers contains the supervised background workers of the server.
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"roomhub/contract"
	"roomhub/domain/event"
	"roomhub/errors"
)

// MembershipReader resolves the current member set of a room. The broadcaster
// reads it at delivery time, never from a snapshot taken at publish time, so
// a user who left between publish and delivery receives nothing.
type MembershipReader interface {
	Members(roomID string) []string
}

// Broadcaster is the single fan-out worker. It drains the shared event
// channel in arrival order, which is per-room sequence order, and pushes
// each event into the sinks of every recipient. Delivery failures are logged
// and never surface to the publisher: persistence, not delivery, defines
// publish success.
type Broadcaster struct {
	log      *slog.Logger
	events   <-chan event.DomainEvent
	members  MembershipReader
	registry contract.IRegistry
}

func NewBroadcaster(log *slog.Logger, events <-chan event.DomainEvent, members MembershipReader, registry contract.IRegistry) *Broadcaster {
	return &Broadcaster{log: log, events: events, members: members, registry: registry}
}

func (b *Broadcaster) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-b.events:
			b.dispatch(ctx, evt)
		case <-ctx.Done():
			b.log.Debug("Context done, stopping broadcaster")
			return nil
		}
	}
}

func (b *Broadcaster) dispatch(ctx context.Context, evt event.DomainEvent) {
	switch e := evt.(type) {
	case event.MessagePosted:
		b.deliverToRoom(ctx, e.Message.RoomID, evt)
	case event.MembershipChanged:
		b.deliverToRoom(ctx, e.RoomID, evt)
	case event.InviteReceived:
		b.deliverToUser(ctx, e.Invitation.InviteeID, evt)
	default:
		// Gap is generated per session by the sink itself and never
		// travels through the shared channel.
		b.log.Warn("Unroutable event", "type", fmt.Sprintf("%T", evt))
	}
}

func (b *Broadcaster) deliverToRoom(ctx context.Context, roomID string, evt event.DomainEvent) {
	for _, userID := range b.members.Members(roomID) {
		b.deliverToUser(ctx, userID, evt)
	}
}

func (b *Broadcaster) deliverToUser(ctx context.Context, userID string, evt event.DomainEvent) {
	for _, s := range b.registry.ChannelsFor(userID) {
		if err := s.Consume(ctx, evt); err != nil {
			if errors.Is(err, errors.ErrDisconnected) {
				b.log.Debug("Session closed mid-delivery", "user_id", userID)
				continue
			}
			b.log.Warn("Event delivery failed", "user_id", userID, "error", err)
		}
	}
}
