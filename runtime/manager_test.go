package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"roomhub/domain"
	"roomhub/domain/event"
	"roomhub/errors"
	"roomhub/repositories"
)

type managerFixture struct {
	manager *Manager
	events  chan event.DomainEvent
	users   repositories.UserRepository
	store   *repositories.Store
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()
	store, err := repositories.OpenStore(t.TempDir(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return fixtureOn(store)
}

func fixtureOn(store *repositories.Store) *managerFixture {
	log := slog.Default()
	events := make(chan event.DomainEvent, 256)
	users := repositories.NewUserRepository(store)
	manager := NewManager(
		repositories.NewRoomRepository(store),
		repositories.NewMessageRepository(store, log, nil),
		users,
		events,
		log,
	)
	return &managerFixture{manager: manager, events: events, users: users, store: store}
}

func (f *managerFixture) user(t *testing.T, name string) string {
	t.Helper()
	user, err := f.users.FindOrCreateUser(name)
	require.NoError(t, err)
	return user.ID
}

func Test_CreateRoom_Empty_Name_Is_Validation(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)

	_, err := f.manager.CreateRoom(context.Background(), f.user(t, "alice"), "", domain.VisibilityPublic)
	req.ErrorIs(err, errors.ErrValidation)
}

func Test_JoinRoom_Public_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)
	ctx := context.Background()
	alice, bob := f.user(t, "alice"), f.user(t, "bob")

	room, err := f.manager.CreateRoom(ctx, alice, "general", domain.VisibilityPublic)
	req.NoError(err)

	req.NoError(f.manager.JoinRoom(ctx, bob, room.ID))
	req.NoError(f.manager.JoinRoom(ctx, bob, room.ID))

	req.ElementsMatch([]string{alice, bob}, f.manager.Members(room.ID))
}

func Test_JoinRoom_Unknown_Room_Is_NotFound(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)

	err := f.manager.JoinRoom(context.Background(), f.user(t, "alice"), "no-such-room")
	req.ErrorIs(err, errors.ErrNotFound)
}

// Full invitation lifecycle: a decline keeps the room shut, a later re-invite
// and accept opens it.
func Test_InviteOnly_Decline_Then_Reinvite_And_Accept(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)
	ctx := context.Background()
	alice, bob := f.user(t, "alice"), f.user(t, "bob")

	ops, err := f.manager.CreateRoom(ctx, alice, "ops", domain.VisibilityInviteOnly)
	req.NoError(err)

	req.ErrorIs(f.manager.JoinRoom(ctx, bob, ops.ID), errors.ErrPermissionDenied)

	inv, err := f.manager.Invite(ctx, alice, ops.ID, bob)
	req.NoError(err)

	declined, err := f.manager.RespondInvite(ctx, bob, inv.ID, false)
	req.NoError(err)
	req.Equal(domain.InviteDeclined, declined.Status)

	req.ErrorIs(f.manager.JoinRoom(ctx, bob, ops.ID), errors.ErrPermissionDenied)

	second, err := f.manager.Invite(ctx, alice, ops.ID, bob)
	req.NoError(err)
	_, err = f.manager.RespondInvite(ctx, bob, second.ID, true)
	req.NoError(err)

	req.NoError(f.manager.JoinRoom(ctx, bob, ops.ID))
	req.ElementsMatch([]string{alice, bob}, f.manager.Members(ops.ID))
}

func Test_Invite_Rules(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)
	ctx := context.Background()
	alice, bob, clara := f.user(t, "alice"), f.user(t, "bob"), f.user(t, "clara")

	room, err := f.manager.CreateRoom(ctx, alice, "ops", domain.VisibilityInviteOnly)
	req.NoError(err)

	// Non-members cannot invite.
	_, err = f.manager.Invite(ctx, clara, room.ID, bob)
	req.ErrorIs(err, errors.ErrPermissionDenied)

	// The invitee must exist.
	_, err = f.manager.Invite(ctx, alice, room.ID, "no-such-user")
	req.ErrorIs(err, errors.ErrNotFound)

	// At most one pending invitation per (room, invitee).
	_, err = f.manager.Invite(ctx, alice, room.ID, bob)
	req.NoError(err)
	_, err = f.manager.Invite(ctx, alice, room.ID, bob)
	req.ErrorIs(err, errors.ErrConflict)
}

func Test_RespondInvite_Rules(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)
	ctx := context.Background()
	alice, bob, clara := f.user(t, "alice"), f.user(t, "bob"), f.user(t, "clara")

	room, err := f.manager.CreateRoom(ctx, alice, "ops", domain.VisibilityInviteOnly)
	req.NoError(err)
	inv, err := f.manager.Invite(ctx, alice, room.ID, bob)
	req.NoError(err)

	_, err = f.manager.RespondInvite(ctx, bob, "no-such-invitation", true)
	req.ErrorIs(err, errors.ErrNotFound)

	// Only the invitee may respond.
	_, err = f.manager.RespondInvite(ctx, clara, inv.ID, true)
	req.ErrorIs(err, errors.ErrPermissionDenied)

	// Transitions are terminal: a resolved invitation behaves as absent.
	_, err = f.manager.RespondInvite(ctx, bob, inv.ID, true)
	req.NoError(err)
	_, err = f.manager.RespondInvite(ctx, bob, inv.ID, false)
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Concurrent_Joins_Lose_No_Updates(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")

	room, err := f.manager.CreateRoom(ctx, alice, "general", domain.VisibilityPublic)
	req.NoError(err)

	const joiners = 20
	userIDs := make([]string, joiners)
	for i := range userIDs {
		userIDs[i] = f.user(t, fmt.Sprintf("user-%d", i))
	}

	var wg sync.WaitGroup
	errs := make([]error, joiners)
	for i, userID := range userIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = f.manager.JoinRoom(ctx, userID, room.ID)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		req.NoError(err)
	}
	req.Len(f.manager.Members(room.ID), joiners+1)
}

func Test_Publish_Allocates_Sequences_In_Order(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)
	ctx := context.Background()
	alice, bob := f.user(t, "alice"), f.user(t, "bob")

	room, err := f.manager.CreateRoom(ctx, alice, "general", domain.VisibilityPublic)
	req.NoError(err)

	// Non-members cannot publish.
	_, err = f.manager.Publish(ctx, bob, room.ID, "hi")
	req.ErrorIs(err, errors.ErrPermissionDenied)

	for i := 1; i <= 3; i++ {
		message, err := f.manager.Publish(ctx, alice, room.ID, fmt.Sprintf("message %d", i))
		req.NoError(err)
		req.Equal(uint64(i), message.Sequence)
	}

	// The event channel carries the messages in sequence order, after the
	// creator's membership event.
	req.IsType(event.MembershipChanged{}, <-f.events)
	for i := 1; i <= 3; i++ {
		posted := (<-f.events).(event.MessagePosted)
		req.Equal(uint64(i), posted.Message.Sequence)
	}
}

func Test_Publish_From_Cancelled_Caller_Still_Fans_Out(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)
	alice := f.user(t, "alice")

	room, err := f.manager.CreateRoom(context.Background(), alice, "general", domain.VisibilityPublic)
	req.NoError(err)
	req.IsType(event.MembershipChanged{}, <-f.events)

	// A client may disconnect the instant it sends. The mutation persisted,
	// so the other members still have to see it.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	message, err := f.manager.Publish(cancelled, alice, room.ID, "parting words")
	req.NoError(err)
	req.Equal(uint64(1), message.Sequence)

	posted := (<-f.events).(event.MessagePosted)
	req.Equal(message.ID, posted.Message.ID)
}

func Test_Last_Leave_Closes_Room_And_Rejoin_Reopens(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)
	ctx := context.Background()
	alice, bob := f.user(t, "alice"), f.user(t, "bob")

	room, err := f.manager.CreateRoom(ctx, alice, "general", domain.VisibilityPublic)
	req.NoError(err)

	req.ErrorIs(f.manager.LeaveRoom(ctx, bob, room.ID), errors.ErrNotFound)

	req.NoError(f.manager.LeaveRoom(ctx, alice, room.ID))
	closed, err := f.manager.Room(room.ID)
	req.NoError(err)
	req.True(closed.Closed)

	req.NoError(f.manager.JoinRoom(ctx, bob, room.ID))
	reopened, err := f.manager.Room(room.ID)
	req.NoError(err)
	req.False(reopened.Closed)
}

func Test_VisibleRooms_Hides_Foreign_InviteOnly_Rooms(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)
	ctx := context.Background()
	alice, bob := f.user(t, "alice"), f.user(t, "bob")

	general, err := f.manager.CreateRoom(ctx, alice, "general", domain.VisibilityPublic)
	req.NoError(err)
	ops, err := f.manager.CreateRoom(ctx, alice, "ops", domain.VisibilityInviteOnly)
	req.NoError(err)

	bobRooms := f.manager.VisibleRooms(bob)
	req.Len(bobRooms, 1)
	req.Equal(general.ID, bobRooms[0].ID)

	aliceRooms := f.manager.VisibleRooms(alice)
	req.ElementsMatch([]string{general.ID, ops.ID},
		[]string{aliceRooms[0].ID, aliceRooms[1].ID})
}

// Restarting on the same store reconstructs rooms, memberships, invitations
// and sequence allocation.
func Test_Load_Rebuilds_Identical_State(t *testing.T) {
	req := require.New(t)
	f := newManagerFixture(t)
	ctx := context.Background()
	alice, bob := f.user(t, "alice"), f.user(t, "bob")

	room, err := f.manager.CreateRoom(ctx, alice, "ops", domain.VisibilityInviteOnly)
	req.NoError(err)
	inv, err := f.manager.Invite(ctx, alice, room.ID, bob)
	req.NoError(err)
	_, err = f.manager.RespondInvite(ctx, bob, inv.ID, true)
	req.NoError(err)
	_, err = f.manager.Publish(ctx, alice, room.ID, "before restart")
	req.NoError(err)

	restarted := fixtureOn(f.store)
	req.NoError(restarted.manager.Load())

	req.ElementsMatch([]string{alice}, restarted.manager.Members(room.ID))

	// The accepted invitation still grants access.
	req.NoError(restarted.manager.JoinRoom(ctx, bob, room.ID))

	// Sequence allocation resumes after the last persisted message.
	message, err := restarted.manager.Publish(ctx, alice, room.ID, "after restart")
	req.NoError(err)
	req.Equal(uint64(2), message.Sequence)
}
