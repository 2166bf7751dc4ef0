package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"roomhub/domain"
	"roomhub/domain/event"
	"roomhub/errors"
	"roomhub/repositories"
)

// roomState is the live image of one room. Two locks with distinct roles:
//
//   - mu serializes every mutation of the room (join, leave, publish) and the
//     enqueue of the resulting event, so per-room event order matches
//     sequence order.
//   - memberMu guards the members map alone, so the broadcaster can read the
//     current member set at delivery time without contending on mu.
//
// Lock order is always mu before memberMu.
type roomState struct {
	mu       sync.Mutex
	memberMu sync.RWMutex
	room     domain.Room
	members  map[string]time.Time // user id -> joined at
	lastSeq  uint64
}

func newRoomState(room domain.Room) *roomState {
	return &roomState{
		room:    room,
		members: make(map[string]time.Time),
	}
}

// Manager owns rooms, memberships and invitations. Every mutation persists
// through the repositories first and commits to the in-memory indices only
// after the transaction succeeds, so a storage failure leaves no partial
// state on either side.
type Manager struct {
	roomRepo    repositories.IRoomRepository
	messageRepo repositories.IMessageRepository
	userRepo    repositories.IUserRepository
	events      chan<- event.DomainEvent
	log         *slog.Logger

	roomsMu sync.RWMutex
	rooms   map[string]*roomState

	// invMu guards the three invitation indices. It is acquired after a
	// roomState.mu when both are needed, never before.
	invMu       sync.Mutex
	invitations map[string]domain.Invitation // invitation id -> invitation
	pending     map[string]string            // room id/invitee id -> invitation id
	accepted    map[string]struct{}          // room id/invitee id with an accepted invitation
}

func NewManager(
	roomRepo repositories.IRoomRepository,
	messageRepo repositories.IMessageRepository,
	userRepo repositories.IUserRepository,
	events chan<- event.DomainEvent,
	log *slog.Logger,
) *Manager {
	return &Manager{
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		events:      events,
		log:         log,
		rooms:       make(map[string]*roomState),
		invitations: make(map[string]domain.Invitation),
		pending:     make(map[string]string),
		accepted:    make(map[string]struct{}),
	}
}

func inviteKey(roomID, inviteeID string) string {
	return roomID + "/" + inviteeID
}

// Load rebuilds the in-memory indices from the store. Called once at
// startup, before the server accepts connections; no repair step is needed
// because every persisted mutation was transactional.
func (m *Manager) Load() error {
	rooms, memberships, invitations, err := m.roomRepo.LoadAll()
	if err != nil {
		return fmt.Errorf("load rooms: %w", err)
	}

	for _, room := range rooms {
		state := newRoomState(room)
		state.lastSeq, err = m.messageRepo.LastSequence(room.ID)
		if err != nil {
			return fmt.Errorf("load last sequence of room %s: %w", room.ID, err)
		}
		m.rooms[room.ID] = state
	}
	for _, membership := range memberships {
		state, ok := m.rooms[membership.RoomID]
		if !ok {
			m.log.Warn("Membership references unknown room", "room_id", membership.RoomID)
			continue
		}
		state.members[membership.UserID] = membership.JoinedAt
	}
	for _, inv := range invitations {
		m.invitations[inv.ID] = inv
		switch inv.Status {
		case domain.InvitePending:
			m.pending[inviteKey(inv.RoomID, inv.InviteeID)] = inv.ID
		case domain.InviteAccepted:
			m.accepted[inviteKey(inv.RoomID, inv.InviteeID)] = struct{}{}
		}
	}

	m.log.Info("State loaded",
		"rooms", len(rooms),
		"memberships", len(memberships),
		"invitations", len(invitations))
	return nil
}

func (m *Manager) state(roomID string) (*roomState, error) {
	m.roomsMu.RLock()
	defer m.roomsMu.RUnlock()

	state, ok := m.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: room %s", errors.ErrNotFound, roomID)
	}
	return state, nil
}

// CreateRoom persists the room together with the creator's membership, then
// publishes the creator's join.
func (m *Manager) CreateRoom(ctx context.Context, creatorID, name string, visibility domain.Visibility) (domain.Room, error) {
	if name == "" {
		return domain.Room{}, fmt.Errorf("%w: room name is empty", errors.ErrValidation)
	}

	room := domain.Room{
		ID:         uuid.NewString(),
		Name:       name,
		Visibility: visibility,
		CreatorID:  creatorID,
		CreatedAt:  time.Now().UTC(),
	}
	membership := domain.Membership{
		RoomID:   room.ID,
		UserID:   creatorID,
		JoinedAt: room.CreatedAt,
	}
	if err := m.roomRepo.CreateRoom(room, membership); err != nil {
		return domain.Room{}, err
	}

	state := newRoomState(room)
	state.members[creatorID] = membership.JoinedAt

	m.roomsMu.Lock()
	m.rooms[room.ID] = state
	m.roomsMu.Unlock()

	m.emit(event.MembershipChanged{RoomID: room.ID, UserID: creatorID, Joined: true})
	return room, nil
}

// JoinRoom adds the user to the room. Idempotent for existing members.
// Invite-only rooms require an accepted invitation. Joining a soft-closed
// room reopens it.
func (m *Manager) JoinRoom(ctx context.Context, userID, roomID string) error {
	state, err := m.state(roomID)
	if err != nil {
		return err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if _, ok := state.members[userID]; ok {
		return nil
	}
	if state.room.Visibility == domain.VisibilityInviteOnly && !m.hasAccepted(roomID, userID) {
		return fmt.Errorf("%w: user %s has no accepted invitation for room %s",
			errors.ErrPermissionDenied, userID, roomID)
	}

	membership := domain.Membership{
		RoomID:   roomID,
		UserID:   userID,
		JoinedAt: time.Now().UTC(),
	}
	var reopened *domain.Room
	if state.room.Closed {
		room := state.room
		room.Closed = false
		reopened = &room
	}
	if err = m.roomRepo.AddMembership(membership, reopened); err != nil {
		return err
	}
	if reopened != nil {
		state.room = *reopened
	}

	state.memberMu.Lock()
	state.members[userID] = membership.JoinedAt
	state.memberMu.Unlock()

	m.emit(event.MembershipChanged{RoomID: roomID, UserID: userID, Joined: true})
	return nil
}

// LeaveRoom removes the membership. The last member leaving soft-closes the
// room in the same transaction; history stays addressable and a later join
// reopens it.
func (m *Manager) LeaveRoom(ctx context.Context, userID, roomID string) error {
	state, err := m.state(roomID)
	if err != nil {
		return err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if _, ok := state.members[userID]; !ok {
		return fmt.Errorf("%w: user %s is not a member of room %s",
			errors.ErrNotFound, userID, roomID)
	}

	var closed *domain.Room
	if len(state.members) == 1 {
		room := state.room
		room.Closed = true
		closed = &room
	}
	if err = m.roomRepo.RemoveMembership(roomID, userID, closed); err != nil {
		return err
	}
	if closed != nil {
		state.room = *closed
	}

	state.memberMu.Lock()
	delete(state.members, userID)
	state.memberMu.Unlock()

	m.emit(event.MembershipChanged{RoomID: roomID, UserID: userID, Joined: false})
	return nil
}

// Invite creates a pending invitation and notifies the invitee. The inviter
// must be a current member; a second invite before the first resolves fails
// with a conflict.
func (m *Manager) Invite(ctx context.Context, inviterID, roomID, inviteeID string) (domain.Invitation, error) {
	state, err := m.state(roomID)
	if err != nil {
		return domain.Invitation{}, err
	}

	state.memberMu.RLock()
	_, isMember := state.members[inviterID]
	state.memberMu.RUnlock()
	if !isMember {
		return domain.Invitation{}, fmt.Errorf("%w: inviter %s is not a member of room %s",
			errors.ErrPermissionDenied, inviterID, roomID)
	}
	if _, err = m.userRepo.GetUser(inviteeID); err != nil {
		return domain.Invitation{}, err
	}

	m.invMu.Lock()
	defer m.invMu.Unlock()

	key := inviteKey(roomID, inviteeID)
	if _, ok := m.pending[key]; ok {
		return domain.Invitation{}, fmt.Errorf("%w: pending invitation for %s in room %s",
			errors.ErrConflict, inviteeID, roomID)
	}

	inv := domain.Invitation{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		InviterID: inviterID,
		InviteeID: inviteeID,
		Status:    domain.InvitePending,
		CreatedAt: time.Now().UTC(),
	}
	if err = m.roomRepo.CreateInvitation(inv); err != nil {
		return domain.Invitation{}, err
	}
	m.invitations[inv.ID] = inv
	m.pending[key] = inv.ID

	m.emit(event.InviteReceived{Invitation: inv})
	return inv, nil
}

// RespondInvite transitions a pending invitation to accepted or declined.
// Transitions are terminal: a resolved invitation behaves as absent.
// Accepting records the join grant only; the invitee still calls JoinRoom,
// keeping membership mutation single-pathed.
func (m *Manager) RespondInvite(_ context.Context, inviteeID, invitationID string, accept bool) (domain.Invitation, error) {
	m.invMu.Lock()
	defer m.invMu.Unlock()

	inv, ok := m.invitations[invitationID]
	if !ok {
		return domain.Invitation{}, fmt.Errorf("%w: invitation %s", errors.ErrNotFound, invitationID)
	}
	if inv.InviteeID != inviteeID {
		return domain.Invitation{}, fmt.Errorf("%w: invitation %s is not addressed to %s",
			errors.ErrPermissionDenied, invitationID, inviteeID)
	}
	if inv.Status != domain.InvitePending {
		return domain.Invitation{}, fmt.Errorf("%w: invitation %s already resolved",
			errors.ErrNotFound, invitationID)
	}

	if accept {
		inv.Status = domain.InviteAccepted
	} else {
		inv.Status = domain.InviteDeclined
	}
	if err := m.roomRepo.ResolveInvitation(inv); err != nil {
		return domain.Invitation{}, err
	}

	key := inviteKey(inv.RoomID, inv.InviteeID)
	m.invitations[inv.ID] = inv
	delete(m.pending, key)
	if accept {
		m.accepted[key] = struct{}{}
	}
	return inv, nil
}

// Publish validates membership, allocates the next sequence under the room
// lock, then persists the message and enqueues its event before releasing
// the lock, so subscribers observe messages in sequence order. Success is
// defined by persistence; fan-out happens asynchronously in the broadcaster.
func (m *Manager) Publish(ctx context.Context, authorID, roomID, text string) (domain.Message, error) {
	state, err := m.state(roomID)
	if err != nil {
		return domain.Message{}, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if _, ok := state.members[authorID]; !ok {
		return domain.Message{}, fmt.Errorf("%w: user %s is not a member of room %s",
			errors.ErrPermissionDenied, authorID, roomID)
	}

	state.lastSeq++
	message := domain.Message{
		ID:        uuid.New(),
		RoomID:    roomID,
		AuthorID:  authorID,
		Text:      text,
		Sequence:  state.lastSeq,
		CreatedAt: time.Now().UTC(),
	}
	if err = m.messageRepo.AppendMessage(message); err != nil {
		state.lastSeq--
		return domain.Message{}, err
	}

	m.emit(event.MessagePosted{Message: message})
	return message, nil
}

// Members snapshots the current member set. The broadcaster calls this at
// delivery time so a user who left after the message was published is
// excluded.
func (m *Manager) Members(roomID string) []string {
	state, err := m.state(roomID)
	if err != nil {
		return nil
	}

	state.memberMu.RLock()
	defer state.memberMu.RUnlock()

	members := make([]string, 0, len(state.members))
	for userID := range state.members {
		members = append(members, userID)
	}
	return members
}

func (m *Manager) IsMember(roomID, userID string) bool {
	state, err := m.state(roomID)
	if err != nil {
		return false
	}

	state.memberMu.RLock()
	defer state.memberMu.RUnlock()
	_, ok := state.members[userID]
	return ok
}

func (m *Manager) Room(roomID string) (domain.Room, error) {
	state, err := m.state(roomID)
	if err != nil {
		return domain.Room{}, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	return state.room, nil
}

// VisibleRooms lists every public room plus the invite-only rooms the user
// belongs to or holds an accepted invitation for.
func (m *Manager) VisibleRooms(userID string) []domain.Room {
	m.roomsMu.RLock()
	defer m.roomsMu.RUnlock()

	var rooms []domain.Room
	for _, state := range m.rooms {
		state.mu.Lock()
		room := state.room
		_, isMember := state.members[userID]
		state.mu.Unlock()

		if room.Visibility == domain.VisibilityPublic || isMember || m.hasAccepted(room.ID, userID) {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

func (m *Manager) hasAccepted(roomID, userID string) bool {
	m.invMu.Lock()
	defer m.invMu.Unlock()
	_, ok := m.accepted[inviteKey(roomID, userID)]
	return ok
}

// emit hands the event to the broadcaster. The send deliberately ignores the
// caller's cancellation: once a mutation has persisted, its fan-out must
// happen even if the issuing client has already disconnected. The channel is
// bounded and drained by a single worker whose sinks never block, so the send
// only stalls while the broadcaster catches up.
func (m *Manager) emit(e event.DomainEvent) {
	m.events <- e
}
