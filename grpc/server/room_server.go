// Package server is the protocol gateway: it translates wire requests into
// service calls and domain events back into wire events. No business rules
// live here.
package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"roomhub/auth"
	"roomhub/contract"
	"roomhub/domain"
	"roomhub/domain/event"
	"roomhub/errors"
	pb "roomhub/proto/chat"
	"roomhub/services"
	"roomhub/sink"
)

type RoomServer struct {
	pb.UnimplementedRoomServiceServer
	authService          services.IAuthService
	chatService          services.IChatService
	registry             contract.IRegistry
	connectionBufferSize int
	log                  *slog.Logger
}

func NewRoomServer(log *slog.Logger, authService services.IAuthService,
	chatService services.IChatService, registry contract.IRegistry,
	connectionBufferSize int) *RoomServer {
	return &RoomServer{
		authService:          authService,
		chatService:          chatService,
		registry:             registry,
		connectionBufferSize: connectionBufferSize,
		log:                  log,
	}
}

// Login is the only public method; everything else requires the returned token.
func (s *RoomServer) Login(_ context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	user, token, err := s.authService.Login(req.GetDisplayName())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.LoginResponse{
		UserId:    user.ID,
		Token:     string(token),
		CreatedAt: user.CreatedAt.UnixNano(),
	}, nil
}

func (s *RoomServer) CreateRoom(ctx context.Context, req *pb.CreateRoomRequest) (*pb.CreateRoomResponse, error) {
	room, err := s.chatService.CreateRoom(ctx, auth.UserIDFromContext(ctx),
		req.GetName(), toVisibility(req.GetVisibility()))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.CreateRoomResponse{Room: s.toRoomPb(room)}, nil
}

func (s *RoomServer) JoinRoom(ctx context.Context, req *pb.JoinRoomRequest) (*pb.Ack, error) {
	if err := s.chatService.JoinRoom(ctx, auth.UserIDFromContext(ctx), req.GetRoomId()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{}, nil
}

func (s *RoomServer) LeaveRoom(ctx context.Context, req *pb.LeaveRoomRequest) (*pb.Ack, error) {
	if err := s.chatService.LeaveRoom(ctx, auth.UserIDFromContext(ctx), req.GetRoomId()); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{}, nil
}

func (s *RoomServer) Invite(ctx context.Context, req *pb.InviteRequest) (*pb.InviteResponse, error) {
	invitation, err := s.chatService.Invite(ctx, auth.UserIDFromContext(ctx),
		req.GetRoomId(), req.GetInviteeId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.InviteResponse{InvitationId: invitation.ID}, nil
}

func (s *RoomServer) RespondInvite(ctx context.Context, req *pb.RespondInviteRequest) (*pb.Ack, error) {
	_, err := s.chatService.RespondInvite(ctx, auth.UserIDFromContext(ctx),
		req.GetInvitationId(), req.GetAccept())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.Ack{}, nil
}

// SendMessage acks with the allocated sequence once the message is durable.
// The sender receives its own message via the Subscribe stream like any
// other member, keeping a single source of truth for ordering.
func (s *RoomServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	message, err := s.chatService.SendMessage(ctx, auth.UserIDFromContext(ctx),
		req.GetRoomId(), req.GetText())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SendMessageResponse{
		MessageId: message.ID.String(),
		Sequence:  message.Sequence,
	}, nil
}

func (s *RoomServer) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	messages, cursor, err := s.chatService.GetHistory(auth.UserIDFromContext(ctx),
		req.GetRoomId(), req.Cursor)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetHistoryResponse{
		Messages: lo.Map(messages, func(m domain.Message, _ int) *pb.Message {
			return toMessagePb(m)
		}),
		Cursor: cursor,
	}, nil
}

func (s *RoomServer) ListRooms(ctx context.Context, _ *pb.ListRoomsRequest) (*pb.ListRoomsResponse, error) {
	rooms := s.chatService.ListRooms(auth.UserIDFromContext(ctx))
	return &pb.ListRoomsResponse{
		Rooms: lo.Map(rooms, func(r domain.Room, _ int) *pb.Room {
			return s.toRoomPb(r)
		}),
	}, nil
}

func (s *RoomServer) ListUsers(_ context.Context, _ *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	users, err := s.chatService.ListUsers()
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.ListUsersResponse{
		Users: lo.Map(users, func(u domain.User, _ int) *pb.User {
			return &pb.User{
				Id:          u.ID,
				DisplayName: u.DisplayName,
				CreatedAt:   u.CreatedAt.UnixNano(),
			}
		}),
	}, nil
}

// Subscribe opens the long-lived outbound stream. It registers a bounded sink
// for this connection and drains it into the stream until the client goes
// away or the registry closes the sink. When the sink has dropped events for
// this slow consumer, a one-time Gap precedes the next delivered event.
func (s *RoomServer) Subscribe(_ *pb.SubscribeRequest, stream pb.RoomService_SubscribeServer) error {
	userID := auth.UserIDFromContext(stream.Context())
	connectionID := uuid.NewString()

	connSink := sink.NewGrpcSink(s.log, s.connectionBufferSize)
	if err := s.registry.Register(userID, connectionID, connSink); err != nil {
		return errors.MapToGRPCError(err)
	}
	defer s.registry.Unregister(userID, connectionID)

	s.log.Info("Subscriber connected", "user_id", userID, "connection_id", connectionID)

	for {
		select {
		case <-stream.Context().Done():
			s.log.Info("Subscriber disconnected", "user_id", userID, "connection_id", connectionID)
			return nil
		case evt, ok := <-connSink.Events():
			if !ok {
				// Registry closed the sink (e.g. session evicted).
				return nil
			}
			if dropped, gapped := connSink.TakeGap(); gapped {
				if err := stream.Send(&pb.Event{Event: &pb.Event_Gap{
					Gap: &pb.Gap{Dropped: dropped},
				}}); err != nil {
					return err
				}
			}
			wireEvent := toEventPb(evt)
			if wireEvent == nil {
				continue
			}
			if err := stream.Send(wireEvent); err != nil {
				s.log.Warn("Failed to push event to stream",
					"user_id", userID,
					"connection_id", connectionID,
					"error", err)
				return err
			}
		}
	}
}

func toEventPb(evt event.DomainEvent) *pb.Event {
	switch e := evt.(type) {
	case event.MessagePosted:
		return &pb.Event{Event: &pb.Event_Message{Message: toMessagePb(e.Message)}}
	case event.InviteReceived:
		return &pb.Event{Event: &pb.Event_Invite{Invite: toInvitationPb(e.Invitation)}}
	case event.MembershipChanged:
		return &pb.Event{Event: &pb.Event_Membership{Membership: &pb.MembershipChange{
			RoomId: e.RoomID,
			UserId: e.UserID,
			Joined: e.Joined,
		}}}
	case event.Gap:
		return &pb.Event{Event: &pb.Event_Gap{Gap: &pb.Gap{Dropped: e.Dropped}}}
	default:
		return nil
	}
}

func toMessagePb(m domain.Message) *pb.Message {
	return &pb.Message{
		Id:        m.ID.String(),
		RoomId:    m.RoomID,
		AuthorId:  m.AuthorID,
		Text:      m.Text,
		Sequence:  m.Sequence,
		CreatedAt: m.CreatedAt.UnixNano(),
	}
}

func toInvitationPb(inv domain.Invitation) *pb.Invitation {
	return &pb.Invitation{
		Id:        inv.ID,
		RoomId:    inv.RoomID,
		InviterId: inv.InviterID,
		InviteeId: inv.InviteeID,
		Status:    toInviteStatusPb(inv.Status),
		CreatedAt: inv.CreatedAt.UnixNano(),
	}
}

func (s *RoomServer) toRoomPb(room domain.Room) *pb.Room {
	return &pb.Room{
		Id:         room.ID,
		Name:       room.Name,
		Visibility: toVisibilityPb(room.Visibility),
		CreatorId:  room.CreatorID,
		CreatedAt:  room.CreatedAt.UnixNano(),
		Closed:     room.Closed,
		MemberIds:  s.chatService.Members(room.ID),
	}
}

func toVisibility(v pb.Visibility) domain.Visibility {
	if v == pb.Visibility_VISIBILITY_INVITE_ONLY {
		return domain.VisibilityInviteOnly
	}
	return domain.VisibilityPublic
}

func toVisibilityPb(v domain.Visibility) pb.Visibility {
	if v == domain.VisibilityInviteOnly {
		return pb.Visibility_VISIBILITY_INVITE_ONLY
	}
	return pb.Visibility_VISIBILITY_PUBLIC
}

func toInviteStatusPb(s domain.InviteStatus) pb.InviteStatus {
	switch s {
	case domain.InviteAccepted:
		return pb.InviteStatus_INVITE_STATUS_ACCEPTED
	case domain.InviteDeclined:
		return pb.InviteStatus_INVITE_STATUS_DECLINED
	default:
		return pb.InviteStatus_INVITE_STATUS_PENDING
	}
}
