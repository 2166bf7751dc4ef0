package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"roomhub/domain"
)

func appendMessages(t *testing.T, repository MessageRepository, roomID string, count int) []domain.Message {
	t.Helper()
	messages := make([]domain.Message, 0, count)
	at := time.Now().UTC()
	for i := 1; i <= count; i++ {
		message := domain.Message{
			ID:        uuid.New(),
			RoomID:    roomID,
			AuthorID:  "alice",
			Text:      fmt.Sprintf("message %d", i),
			Sequence:  uint64(i),
			CreatedAt: at.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repository.AppendMessage(message))
		messages = append(messages, message)
	}
	return messages
}

func Test_GetMessages_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestStore(t), slog.Default(), nil)

	written := appendMessages(t, repository, "room-1", 3)

	fetched, _, err := repository.GetMessages("room-1", nil)
	req.NoError(err)
	req.Len(fetched, 3)
	req.Equal(written[2], fetched[0])
	req.Equal(written[0], fetched[2])
}

func Test_GetMessages_Pages_Backwards_With_Cursor(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewMessageRepository(openTestStore(t), slog.Default(), &limit)

	appendMessages(t, repository, "room-1", 5)

	page, cursor, err := repository.GetMessages("room-1", nil)
	req.NoError(err)
	req.Len(page, 2)
	req.Equal(uint64(5), page[0].Sequence)
	req.Equal(uint64(4), page[1].Sequence)
	req.NotNil(cursor)

	page, cursor, err = repository.GetMessages("room-1", cursor)
	req.NoError(err)
	req.Len(page, 2)
	req.Equal(uint64(3), page[0].Sequence)
	req.Equal(uint64(2), page[1].Sequence)

	page, _, err = repository.GetMessages("room-1", cursor)
	req.NoError(err)
	req.Len(page, 1)
	req.Equal(uint64(1), page[0].Sequence)
}

func Test_GetMessages_Empty_Page_Keeps_Cursor(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewMessageRepository(openTestStore(t), slog.Default(), &limit)

	appendMessages(t, repository, "room-1", 2)

	_, cursor, err := repository.GetMessages("room-1", nil)
	req.NoError(err)
	req.NotNil(cursor)

	// Paging past the end must not reset the cursor, or a client polling
	// the tail of the log would restart from the newest message.
	page, next, err := repository.GetMessages("room-1", cursor)
	req.NoError(err)
	req.Empty(page)
	req.Equal(cursor, next)

	// A room with no history never hands out a cursor at all.
	page, next, err = repository.GetMessages("room-2", nil)
	req.NoError(err)
	req.Empty(page)
	req.Nil(next)
}

func Test_Rooms_Do_Not_Share_Logs(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestStore(t), slog.Default(), nil)

	appendMessages(t, repository, "room-1", 2)
	appendMessages(t, repository, "room-2", 4)

	fetched, _, err := repository.GetMessages("room-1", nil)
	req.NoError(err)
	req.Len(fetched, 2)
}

func Test_LastSequence(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestStore(t), slog.Default(), nil)

	last, err := repository.LastSequence("empty-room")
	req.NoError(err)
	req.Zero(last)

	appendMessages(t, repository, "room-1", 7)
	last, err = repository.LastSequence("room-1")
	req.NoError(err)
	req.Equal(uint64(7), last)
}
