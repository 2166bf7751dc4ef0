package services

import (
	"context"
	"fmt"

	"roomhub/auth"
	"roomhub/domain"
	"roomhub/errors"
	"roomhub/repositories"
	"roomhub/runtime"
)

type IChatService interface {
	CreateRoom(ctx context.Context, creatorID, name string, visibility domain.Visibility) (domain.Room, error)
	JoinRoom(ctx context.Context, userID, roomID string) error
	LeaveRoom(ctx context.Context, userID, roomID string) error
	Invite(ctx context.Context, inviterID, roomID, inviteeID string) (domain.Invitation, error)
	RespondInvite(ctx context.Context, inviteeID, invitationID string, accept bool) (domain.Invitation, error)
	SendMessage(ctx context.Context, authorID, roomID, text string) (domain.Message, error)
	GetHistory(userID, roomID string, cursor *string) ([]domain.Message, *string, error)
	ListRooms(userID string) []domain.Room
	ListUsers() ([]domain.User, error)
	Members(roomID string) []string
}

// ChatService fronts the room manager for the gateway. Mutations go through
// the manager so per-room serialization holds; reads that bypass it
// (history, user listing) hit the repositories directly.
type ChatService struct {
	manager           *runtime.Manager
	messageRepository repositories.IMessageRepository
	userRepository    repositories.IUserRepository
}

func NewChatService(manager *runtime.Manager,
	messageRepository repositories.IMessageRepository,
	userRepository repositories.IUserRepository) IChatService {
	return &ChatService{
		manager:           manager,
		messageRepository: messageRepository,
		userRepository:    userRepository,
	}
}

func (s *ChatService) CreateRoom(ctx context.Context, creatorID, name string, visibility domain.Visibility) (domain.Room, error) {
	if err := auth.ValidateCreateRoom(auth.CreateRoomRequest{
		Name:       name,
		Visibility: string(visibility),
	}); err != nil {
		return domain.Room{}, err
	}
	return s.manager.CreateRoom(ctx, creatorID, name, visibility)
}

func (s *ChatService) JoinRoom(ctx context.Context, userID, roomID string) error {
	return s.manager.JoinRoom(ctx, userID, roomID)
}

func (s *ChatService) LeaveRoom(ctx context.Context, userID, roomID string) error {
	return s.manager.LeaveRoom(ctx, userID, roomID)
}

func (s *ChatService) Invite(ctx context.Context, inviterID, roomID, inviteeID string) (domain.Invitation, error) {
	return s.manager.Invite(ctx, inviterID, roomID, inviteeID)
}

func (s *ChatService) RespondInvite(ctx context.Context, inviteeID, invitationID string, accept bool) (domain.Invitation, error) {
	return s.manager.RespondInvite(ctx, inviteeID, invitationID, accept)
}

func (s *ChatService) SendMessage(ctx context.Context, authorID, roomID, text string) (domain.Message, error) {
	if err := auth.ValidateSendMessage(auth.SendMessageRequest{
		RoomID: roomID,
		Text:   text,
	}); err != nil {
		return domain.Message{}, err
	}
	return s.manager.Publish(ctx, authorID, roomID, text)
}

// GetHistory pages a room's log backwards. Members only: history of an
// invite-only room is not readable from outside.
func (s *ChatService) GetHistory(userID, roomID string, cursor *string) ([]domain.Message, *string, error) {
	room, err := s.manager.Room(roomID)
	if err != nil {
		return nil, nil, err
	}
	if room.Visibility == domain.VisibilityInviteOnly && !s.manager.IsMember(roomID, userID) {
		return nil, nil, fmt.Errorf("%w: user %s is not a member of room %s",
			errors.ErrPermissionDenied, userID, roomID)
	}
	return s.messageRepository.GetMessages(roomID, cursor)
}

func (s *ChatService) ListRooms(userID string) []domain.Room {
	return s.manager.VisibleRooms(userID)
}

func (s *ChatService) ListUsers() ([]domain.User, error) {
	return s.userRepository.ListUsers()
}

// Members exposes the delivery-time member snapshot for wire responses.
func (s *ChatService) Members(roomID string) []string {
	return s.manager.Members(roomID)
}
