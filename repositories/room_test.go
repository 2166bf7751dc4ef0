package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"roomhub/domain"
	"roomhub/errors"
)

func testRoom(creatorID string) (domain.Room, domain.Membership) {
	now := time.Now().UTC()
	room := domain.Room{
		ID:         uuid.NewString(),
		Name:       "general",
		Visibility: domain.VisibilityPublic,
		CreatorID:  creatorID,
		CreatedAt:  now,
	}
	return room, domain.Membership{RoomID: room.ID, UserID: creatorID, JoinedAt: now}
}

func Test_CreateRoom_Persists_Creator_Membership_Atomically(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestStore(t))

	room, creator := testRoom("alice")
	req.NoError(repository.CreateRoom(room, creator))

	rooms, memberships, _, err := repository.LoadAll()
	req.NoError(err)
	req.Equal([]domain.Room{room}, rooms)
	req.Equal([]domain.Membership{creator}, memberships)
}

func Test_Second_Pending_Invitation_Is_Conflict(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestStore(t))

	inv := domain.Invitation{
		ID:        uuid.NewString(),
		RoomID:    "room-1",
		InviterID: "alice",
		InviteeID: "bob",
		Status:    domain.InvitePending,
		CreatedAt: time.Now().UTC(),
	}
	req.NoError(repository.CreateInvitation(inv))

	second := inv
	second.ID = uuid.NewString()
	req.ErrorIs(repository.CreateInvitation(second), errors.ErrConflict)

	// Resolving clears the pending marker, so a new invitation is allowed.
	inv.Status = domain.InviteDeclined
	req.NoError(repository.ResolveInvitation(inv))
	req.NoError(repository.CreateInvitation(second))
}

func Test_CreateInvitation_Surfaces_Storage_Failure(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)
	repository := NewRoomRepository(store)
	req.NoError(store.Close())

	inv := domain.Invitation{
		ID:        uuid.NewString(),
		RoomID:    "room-1",
		InviterID: "alice",
		InviteeID: "bob",
		Status:    domain.InvitePending,
		CreatedAt: time.Now().UTC(),
	}
	// A storage failure must come back as one, never be mistaken for an
	// absent pending marker.
	err := repository.CreateInvitation(inv)
	req.ErrorIs(err, errors.ErrStorage)
	req.NotErrorIs(err, errors.ErrConflict)
}

func Test_RemoveMembership_SoftCloses_Room_Atomically(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestStore(t))

	room, creator := testRoom("alice")
	req.NoError(repository.CreateRoom(room, creator))

	closed := room
	closed.Closed = true
	req.NoError(repository.RemoveMembership(room.ID, "alice", &closed))

	rooms, memberships, _, err := repository.LoadAll()
	req.NoError(err)
	req.Empty(memberships)
	req.Len(rooms, 1)
	req.True(rooms[0].Closed)
}

func Test_AddMembership_Reopens_Closed_Room(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestStore(t))

	room, creator := testRoom("alice")
	room.Closed = true
	req.NoError(repository.CreateRoom(room, creator))

	reopened := room
	reopened.Closed = false
	membership := domain.Membership{RoomID: room.ID, UserID: "bob", JoinedAt: time.Now().UTC()}
	req.NoError(repository.AddMembership(membership, &reopened))

	fetched, err := repository.GetRoom(room.ID)
	req.NoError(err)
	req.False(fetched.Closed)
}

func Test_Restart_Reconstructs_Identical_State(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	store, err := OpenStore(dir, slog.Default())
	req.NoError(err)
	repository := NewRoomRepository(store)

	room, creator := testRoom("alice")
	req.NoError(repository.CreateRoom(room, creator))
	inv := domain.Invitation{
		ID:        uuid.NewString(),
		RoomID:    room.ID,
		InviterID: "alice",
		InviteeID: "bob",
		Status:    domain.InvitePending,
		CreatedAt: time.Now().UTC(),
	}
	req.NoError(repository.CreateInvitation(inv))
	inv.Status = domain.InviteAccepted
	req.NoError(repository.ResolveInvitation(inv))
	req.NoError(store.Close())

	store, err = OpenStore(dir, slog.Default())
	req.NoError(err)
	defer store.Close()

	rooms, memberships, invitations, err := NewRoomRepository(store).LoadAll()
	req.NoError(err)
	req.Equal([]domain.Room{room}, rooms)
	req.Equal([]domain.Membership{creator}, memberships)
	req.Equal([]domain.Invitation{inv}, invitations)
}
