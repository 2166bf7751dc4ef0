package repositories

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	pb "roomhub/proto/chat"

	"roomhub/domain"
)

type IMessageRepository interface {
	AppendMessage(message domain.Message) error
	GetMessages(roomID string, cursor *string) ([]domain.Message, *string, error)
	LastSequence(roomID string) (uint64, error)
}

type MessageRepository struct {
	store         *Store
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(store *Store, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{store: store, log: log, limitMessages: limitMessages}
}

// messageKey formats "{room_id}/{sequence_padded}". The 19-digit zero padding
// makes lexicographic key order equal sequence order, so a prefix scan
// replays a room exactly as it was appended.
func messageKey(roomID string, sequence uint64) string {
	return fmt.Sprintf("%s/%019d", roomID, sequence)
}

// AppendMessage persists one message under its pre-allocated sequence. The
// manager allocates sequences under the room lock, so keys never collide.
func (m MessageRepository) AppendMessage(message domain.Message) error {
	data, err := proto.Marshal(fromMessage(message))
	if err != nil {
		return err
	}
	return m.store.Update(func(tx *Txn) error {
		return tx.Put(CollectionMessages, messageKey(message.RoomID, message.Sequence), data)
	})
}

// GetMessages pages a room's history backwards from the cursor (newest first
// when no cursor is given). It returns the cursor of the last visited key so
// a client resynchronizing after a Gap can keep paging.
func (m MessageRepository) GetMessages(roomID string, cursor *string) ([]domain.Message, *string, error) {
	var messages []domain.Message
	var lastKey string
	prefix := roomID + "/"

	err := m.store.View(func(tx *Txn) error {
		from := ""
		if cursor != nil {
			from = *cursor
		}
		return tx.ScanPrefixReverse(CollectionMessages, prefix, from, func(key string, value []byte) error {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *m.limitMessages))
				return errStopScan
			}
			var messagePb pb.Message
			if err := proto.Unmarshal(value, &messagePb); err != nil {
				return err
			}
			message, err := toMessage(&messagePb)
			if err != nil {
				return err
			}
			messages = append(messages, message)
			lastKey = key[len(prefix):]
			return nil
		})
	})
	if err != nil && !stderrors.Is(err, errStopScan) {
		return nil, nil, err
	}
	if len(messages) == 0 {
		// Nothing past the cursor. Hand it back unchanged so a client
		// polling the end of the log does not restart from the newest.
		return nil, cursor, nil
	}
	return messages, &lastKey, nil
}

// LastSequence reads the newest key of a room's log; 0 when the room has no
// messages. Used once per room at startup to resume sequence allocation.
func (m MessageRepository) LastSequence(roomID string) (uint64, error) {
	var last uint64
	prefix := roomID + "/"
	err := m.store.View(func(tx *Txn) error {
		return tx.ScanPrefixReverse(CollectionMessages, prefix, "", func(key string, _ []byte) error {
			seq, err := strconv.ParseUint(key[len(prefix):], 10, 64)
			if err != nil {
				return fmt.Errorf("malformed message key %q: %w", key, err)
			}
			last = seq
			return errStopScan
		})
	})
	if err != nil && !stderrors.Is(err, errStopScan) {
		return 0, err
	}
	return last, nil
}

func fromMessage(message domain.Message) *pb.Message {
	return &pb.Message{
		Id:        message.ID.String(),
		RoomId:    message.RoomID,
		AuthorId:  message.AuthorID,
		Text:      message.Text,
		Sequence:  message.Sequence,
		CreatedAt: message.CreatedAt.UnixNano(),
	}
}

func toMessage(messagePb *pb.Message) (domain.Message, error) {
	parsedID, err := uuid.Parse(messagePb.Id)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:        parsedID,
		RoomID:    messagePb.RoomId,
		AuthorID:  messagePb.AuthorId,
		Text:      messagePb.Text,
		Sequence:  messagePb.Sequence,
		CreatedAt: time.Unix(0, messagePb.CreatedAt).UTC(),
	}, nil
}
