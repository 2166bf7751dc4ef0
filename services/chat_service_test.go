package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"roomhub/domain"
	"roomhub/domain/event"
	"roomhub/errors"
	"roomhub/repositories"
	"roomhub/runtime"
)

type chatFixture struct {
	service IChatService
	users   repositories.UserRepository
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()
	log := slog.Default()
	store, err := repositories.OpenStore(t.TempDir(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	users := repositories.NewUserRepository(store)
	messages := repositories.NewMessageRepository(store, log, nil)
	manager := runtime.NewManager(
		repositories.NewRoomRepository(store), messages, users,
		make(chan event.DomainEvent, 256), log,
	)
	return &chatFixture{service: NewChatService(manager, messages, users), users: users}
}

func (f *chatFixture) user(t *testing.T, name string) string {
	t.Helper()
	user, err := f.users.FindOrCreateUser(name)
	require.NoError(t, err)
	return user.ID
}

func Test_SendMessage_Validates_Input(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")

	room, err := f.service.CreateRoom(ctx, alice, "general", domain.VisibilityPublic)
	req.NoError(err)

	_, err = f.service.SendMessage(ctx, alice, room.ID, "")
	req.ErrorIs(err, errors.ErrValidation)

	_, err = f.service.SendMessage(ctx, alice, "not-a-uuid", "hello")
	req.ErrorIs(err, errors.ErrValidation)
}

func Test_History_Of_InviteOnly_Room_Is_Members_Only(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	ctx := context.Background()
	alice, bob := f.user(t, "alice"), f.user(t, "bob")

	room, err := f.service.CreateRoom(ctx, alice, "ops", domain.VisibilityInviteOnly)
	req.NoError(err)
	_, err = f.service.SendMessage(ctx, alice, room.ID, "secret")
	req.NoError(err)

	_, _, err = f.service.GetHistory(bob, room.ID, nil)
	req.ErrorIs(err, errors.ErrPermissionDenied)

	messages, _, err := f.service.GetHistory(alice, room.ID, nil)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("secret", messages[0].Text)
}

func Test_Public_Room_History_Is_Open(t *testing.T) {
	req := require.New(t)
	f := newChatFixture(t)
	ctx := context.Background()
	alice, bob := f.user(t, "alice"), f.user(t, "bob")

	room, err := f.service.CreateRoom(ctx, alice, "general", domain.VisibilityPublic)
	req.NoError(err)
	_, err = f.service.SendMessage(ctx, alice, room.ID, "hello")
	req.NoError(err)

	messages, _, err := f.service.GetHistory(bob, room.ID, nil)
	req.NoError(err)
	req.Len(messages, 1)
}
