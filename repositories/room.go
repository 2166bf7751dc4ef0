package repositories

import (
	stderrors "errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"

	pb "roomhub/proto/chat"

	"roomhub/domain"
	"roomhub/errors"
)

type IRoomRepository interface {
	CreateRoom(room domain.Room, creator domain.Membership) error
	GetRoom(id string) (domain.Room, error)
	AddMembership(m domain.Membership, reopenedRoom *domain.Room) error
	RemoveMembership(roomID, userID string, closedRoom *domain.Room) error
	CreateInvitation(inv domain.Invitation) error
	ResolveInvitation(inv domain.Invitation) error
	LoadAll() ([]domain.Room, []domain.Membership, []domain.Invitation, error)
}

// RoomRepository persists rooms, memberships and invitations. Multi-key
// mutations (room + creator membership, invitation + pending marker) run in a
// single transaction so recovery never needs a repair step.
type RoomRepository struct {
	store *Store
}

func NewRoomRepository(store *Store) RoomRepository {
	return RoomRepository{store: store}
}

func membershipKey(roomID, userID string) string {
	return roomID + "/" + userID
}

func (r RoomRepository) CreateRoom(room domain.Room, creator domain.Membership) error {
	return r.store.Update(func(tx *Txn) error {
		if err := putRoom(tx, room); err != nil {
			return err
		}
		return putMembership(tx, creator)
	})
}

func (r RoomRepository) GetRoom(id string) (domain.Room, error) {
	var room domain.Room
	err := r.store.View(func(tx *Txn) error {
		value, err := tx.Get(CollectionRooms, id)
		if err != nil {
			return err
		}
		roomPb := &pb.Room{}
		if err = proto.Unmarshal(value, roomPb); err != nil {
			return fmt.Errorf("unmarshal room %s: %w", id, err)
		}
		room = toRoom(roomPb)
		return nil
	})
	return room, err
}

// AddMembership writes the membership record. A join into a soft-closed room
// reopens it; the caller passes the reopened room so both writes commit
// atomically.
func (r RoomRepository) AddMembership(m domain.Membership, reopenedRoom *domain.Room) error {
	return r.store.Update(func(tx *Txn) error {
		if err := putMembership(tx, m); err != nil {
			return err
		}
		if reopenedRoom != nil {
			return putRoom(tx, *reopenedRoom)
		}
		return nil
	})
}

// RemoveMembership deletes the membership record. When the departure empties
// the room, the caller passes the soft-closed room so both writes commit
// atomically.
func (r RoomRepository) RemoveMembership(roomID, userID string, closedRoom *domain.Room) error {
	return r.store.Update(func(tx *Txn) error {
		if err := tx.Delete(CollectionMemberships, membershipKey(roomID, userID)); err != nil {
			return err
		}
		if closedRoom != nil {
			return putRoom(tx, *closedRoom)
		}
		return nil
	})
}

// CreateInvitation writes the invitation and its pending marker together.
// The marker enforces at most one pending invitation per (room, invitee):
// a second Invite before resolution fails with ErrConflict inside the same
// transaction that would have written it.
func (r RoomRepository) CreateInvitation(inv domain.Invitation) error {
	return r.store.Update(func(tx *Txn) error {
		marker := membershipKey(inv.RoomID, inv.InviteeID)
		switch _, err := tx.Get(CollectionInvPending, marker); {
		case err == nil:
			return fmt.Errorf("%w: pending invitation for %s in room %s",
				errors.ErrConflict, inv.InviteeID, inv.RoomID)
		case !stderrors.Is(err, errors.ErrNotFound):
			return err
		}
		if err := putInvitation(tx, inv); err != nil {
			return err
		}
		return tx.Put(CollectionInvPending, marker, []byte(inv.ID))
	})
}

// ResolveInvitation stores the terminal status and clears the pending marker.
func (r RoomRepository) ResolveInvitation(inv domain.Invitation) error {
	return r.store.Update(func(tx *Txn) error {
		if err := putInvitation(tx, inv); err != nil {
			return err
		}
		return tx.Delete(CollectionInvPending, membershipKey(inv.RoomID, inv.InviteeID))
	})
}

// LoadAll scans the store on startup so the manager can rebuild its
// in-memory indices.
func (r RoomRepository) LoadAll() ([]domain.Room, []domain.Membership, []domain.Invitation, error) {
	var (
		rooms       []domain.Room
		memberships []domain.Membership
		invitations []domain.Invitation
	)
	err := r.store.View(func(tx *Txn) error {
		if err := tx.ScanPrefix(CollectionRooms, "", func(_ string, value []byte) error {
			roomPb := &pb.Room{}
			if err := proto.Unmarshal(value, roomPb); err != nil {
				return err
			}
			rooms = append(rooms, toRoom(roomPb))
			return nil
		}); err != nil {
			return err
		}
		if err := tx.ScanPrefix(CollectionMemberships, "", func(_ string, value []byte) error {
			memberPb := &pb.Membership{}
			if err := proto.Unmarshal(value, memberPb); err != nil {
				return err
			}
			memberships = append(memberships, toMembership(memberPb))
			return nil
		}); err != nil {
			return err
		}
		return tx.ScanPrefix(CollectionInvitations, "", func(_ string, value []byte) error {
			invPb := &pb.Invitation{}
			if err := proto.Unmarshal(value, invPb); err != nil {
				return err
			}
			invitations = append(invitations, toInvitation(invPb))
			return nil
		})
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return rooms, memberships, invitations, nil
}

func putRoom(tx *Txn, room domain.Room) error {
	data, err := proto.Marshal(fromRoom(room))
	if err != nil {
		return err
	}
	return tx.Put(CollectionRooms, room.ID, data)
}

func putMembership(tx *Txn, m domain.Membership) error {
	data, err := proto.Marshal(fromMembership(m))
	if err != nil {
		return err
	}
	return tx.Put(CollectionMemberships, membershipKey(m.RoomID, m.UserID), data)
}

func putInvitation(tx *Txn, inv domain.Invitation) error {
	data, err := proto.Marshal(fromInvitation(inv))
	if err != nil {
		return err
	}
	return tx.Put(CollectionInvitations, inv.ID, data)
}

func fromRoom(room domain.Room) *pb.Room {
	return &pb.Room{
		Id:         room.ID,
		Name:       room.Name,
		Visibility: fromVisibility(room.Visibility),
		CreatorId:  room.CreatorID,
		CreatedAt:  room.CreatedAt.UnixNano(),
		Closed:     room.Closed,
	}
}

func toRoom(roomPb *pb.Room) domain.Room {
	return domain.Room{
		ID:         roomPb.Id,
		Name:       roomPb.Name,
		Visibility: toVisibility(roomPb.Visibility),
		CreatorID:  roomPb.CreatorId,
		CreatedAt:  time.Unix(0, roomPb.CreatedAt).UTC(),
		Closed:     roomPb.Closed,
	}
}

func fromMembership(m domain.Membership) *pb.Membership {
	return &pb.Membership{
		RoomId:   m.RoomID,
		UserId:   m.UserID,
		JoinedAt: m.JoinedAt.UnixNano(),
	}
}

func toMembership(memberPb *pb.Membership) domain.Membership {
	return domain.Membership{
		RoomID:   memberPb.RoomId,
		UserID:   memberPb.UserId,
		JoinedAt: time.Unix(0, memberPb.JoinedAt).UTC(),
	}
}

func fromInvitation(inv domain.Invitation) *pb.Invitation {
	return &pb.Invitation{
		Id:        inv.ID,
		RoomId:    inv.RoomID,
		InviterId: inv.InviterID,
		InviteeId: inv.InviteeID,
		Status:    fromInviteStatus(inv.Status),
		CreatedAt: inv.CreatedAt.UnixNano(),
	}
}

func toInvitation(invPb *pb.Invitation) domain.Invitation {
	return domain.Invitation{
		ID:        invPb.Id,
		RoomID:    invPb.RoomId,
		InviterID: invPb.InviterId,
		InviteeID: invPb.InviteeId,
		Status:    toInviteStatus(invPb.Status),
		CreatedAt: time.Unix(0, invPb.CreatedAt).UTC(),
	}
}

func fromVisibility(v domain.Visibility) pb.Visibility {
	if v == domain.VisibilityInviteOnly {
		return pb.Visibility_VISIBILITY_INVITE_ONLY
	}
	return pb.Visibility_VISIBILITY_PUBLIC
}

func toVisibility(v pb.Visibility) domain.Visibility {
	if v == pb.Visibility_VISIBILITY_INVITE_ONLY {
		return domain.VisibilityInviteOnly
	}
	return domain.VisibilityPublic
}

func fromInviteStatus(s domain.InviteStatus) pb.InviteStatus {
	switch s {
	case domain.InviteAccepted:
		return pb.InviteStatus_INVITE_STATUS_ACCEPTED
	case domain.InviteDeclined:
		return pb.InviteStatus_INVITE_STATUS_DECLINED
	default:
		return pb.InviteStatus_INVITE_STATUS_PENDING
	}
}

func toInviteStatus(s pb.InviteStatus) domain.InviteStatus {
	switch s {
	case pb.InviteStatus_INVITE_STATUS_ACCEPTED:
		return domain.InviteAccepted
	case pb.InviteStatus_INVITE_STATUS_DECLINED:
		return domain.InviteDeclined
	default:
		return domain.InvitePending
	}
}
