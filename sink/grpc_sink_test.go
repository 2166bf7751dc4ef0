package sink

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"roomhub/domain"
	"roomhub/domain/event"
	"roomhub/errors"
)

func message(seq uint64) event.MessagePosted {
	return event.MessagePosted{Message: domain.Message{RoomID: "room-1", Sequence: seq}}
}

func Test_Consume_And_Drain_In_Order(t *testing.T) {
	req := require.New(t)
	s := NewGrpcSink(slog.Default(), 4)
	ctx := context.Background()

	for seq := uint64(1); seq <= 3; seq++ {
		req.NoError(s.Consume(ctx, message(seq)))
	}

	for seq := uint64(1); seq <= 3; seq++ {
		evt := <-s.Events()
		req.Equal(seq, evt.(event.MessagePosted).Message.Sequence)
	}
	_, gapped := s.TakeGap()
	req.False(gapped)
}

func Test_Saturation_Drops_Oldest_And_Gaps_Once(t *testing.T) {
	req := require.New(t)
	s := NewGrpcSink(slog.Default(), 2)
	ctx := context.Background()

	// Capacity 2, five events: 1 and 2 fill the queue, 3..5 each evict the
	// oldest. The queue must end with the newest two.
	for seq := uint64(1); seq <= 5; seq++ {
		req.NoError(s.Consume(ctx, message(seq)))
	}

	dropped, gapped := s.TakeGap()
	req.True(gapped)
	req.Equal(uint64(3), dropped)

	req.Equal(uint64(4), (<-s.Events()).(event.MessagePosted).Message.Sequence)
	req.Equal(uint64(5), (<-s.Events()).(event.MessagePosted).Message.Sequence)

	// The gap is reported exactly once.
	_, gapped = s.TakeGap()
	req.False(gapped)
}

func Test_Consume_After_Close_Is_Disconnected(t *testing.T) {
	req := require.New(t)
	s := NewGrpcSink(slog.Default(), 2)

	s.Close()
	s.Close() // idempotent

	err := s.Consume(context.Background(), message(1))
	req.ErrorIs(err, errors.ErrDisconnected)

	_, open := <-s.Events()
	req.False(open)
}
