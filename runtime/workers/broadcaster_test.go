package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"roomhub/contract"
	"roomhub/domain"
	"roomhub/domain/event"
)

type recordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Close() {}

func (s *recordingSink) Events() []event.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.DomainEvent{}, s.events...)
}

type stubRegistry struct {
	sinks map[string][]contract.EventSink
}

func (r *stubRegistry) Register(string, string, contract.EventSink) error { return nil }
func (r *stubRegistry) Unregister(string, string)                         {}
func (r *stubRegistry) ChannelsFor(userID string) []contract.EventSink {
	return r.sinks[userID]
}

type stubMembers map[string][]string

func (m stubMembers) Members(roomID string) []string { return m[roomID] }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func Test_Message_Reaches_Current_Members_Only(t *testing.T) {
	req := require.New(t)

	aliceSink, bobSink, daveSink := &recordingSink{}, &recordingSink{}, &recordingSink{}
	registry := &stubRegistry{sinks: map[string][]contract.EventSink{
		"alice": {aliceSink},
		"bob":   {bobSink},
		"dave":  {daveSink}, // stale session, not a member
	}}
	members := stubMembers{"room-1": {"alice", "bob"}}

	events := make(chan event.DomainEvent, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = NewBroadcaster(slog.Default(), events, members, registry).Run(ctx) }()

	posted := event.MessagePosted{Message: domain.Message{RoomID: "room-1", Sequence: 1, Text: "hi"}}
	events <- posted

	waitFor(t, func() bool { return len(aliceSink.Events()) == 1 && len(bobSink.Events()) == 1 })
	req.Equal(posted, aliceSink.Events()[0])
	req.Equal(posted, bobSink.Events()[0])
	req.Empty(daveSink.Events())
}

func Test_Invite_Reaches_Invitee_Only(t *testing.T) {
	req := require.New(t)

	aliceSink, bobSink := &recordingSink{}, &recordingSink{}
	registry := &stubRegistry{sinks: map[string][]contract.EventSink{
		"alice": {aliceSink},
		"bob":   {bobSink},
	}}
	members := stubMembers{"room-1": {"alice"}}

	events := make(chan event.DomainEvent, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = NewBroadcaster(slog.Default(), events, members, registry).Run(ctx) }()

	events <- event.InviteReceived{Invitation: domain.Invitation{ID: "inv-1", RoomID: "room-1", InviteeID: "bob"}}

	waitFor(t, func() bool { return len(bobSink.Events()) == 1 })
	req.Empty(aliceSink.Events())
}

func Test_Events_Preserve_Arrival_Order_Per_Room(t *testing.T) {
	req := require.New(t)

	aliceSink := &recordingSink{}
	registry := &stubRegistry{sinks: map[string][]contract.EventSink{"alice": {aliceSink}}}
	members := stubMembers{"room-1": {"alice"}}

	events := make(chan event.DomainEvent, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = NewBroadcaster(slog.Default(), events, members, registry).Run(ctx) }()

	for seq := uint64(1); seq <= 5; seq++ {
		events <- event.MessagePosted{Message: domain.Message{RoomID: "room-1", Sequence: seq}}
	}

	waitFor(t, func() bool { return len(aliceSink.Events()) == 5 })
	for i, evt := range aliceSink.Events() {
		req.Equal(uint64(i+1), evt.(event.MessagePosted).Message.Sequence)
	}
}
