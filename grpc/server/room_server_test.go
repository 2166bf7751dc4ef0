package server

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"roomhub/auth"
	"roomhub/domain/event"
	pb "roomhub/proto/chat"
	"roomhub/repositories"
	"roomhub/runtime"
	"roomhub/runtime/workers"
	"roomhub/services"
)

// RoomServerSuite boots the full server stack (store, manager, broadcaster,
// interceptors, gateway) on an in-memory listener for every test.
type RoomServerSuite struct {
	suite.Suite
	client pb.RoomServiceClient
	cancel context.CancelFunc
	conn   *grpc.ClientConn
	server *grpc.Server
	store  *repositories.Store
}

func TestRoomServerSuite(t *testing.T) {
	suite.Run(t, &RoomServerSuite{})
}

func (s *RoomServerSuite) SetupTest() {
	req := s.Require()
	log := slog.Default()

	store, err := repositories.OpenStore(s.T().TempDir(), log)
	req.NoError(err)
	s.store = store

	userRepository := repositories.NewUserRepository(store)
	roomRepository := repositories.NewRoomRepository(store)
	messageRepository := repositories.NewMessageRepository(store, log, nil)

	events := make(chan event.DomainEvent, 256)
	registry := runtime.NewRegistry(true)
	manager := runtime.NewManager(roomRepository, messageRepository, userRepository, events, log)
	req.NoError(manager.Load())

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go func() {
		_ = workers.NewBroadcaster(log, events, manager, registry).Run(ctx)
	}()

	s.server = grpc.NewServer(
		grpc.UnaryInterceptor(auth.UnaryInterceptor),
		grpc.StreamInterceptor(auth.StreamInterceptor),
	)
	pb.RegisterRoomServiceServer(s.server, NewRoomServer(
		log,
		services.NewAuthService(userRepository, time.Hour),
		services.NewChatService(manager, messageRepository, userRepository),
		registry, 16,
	))

	listener := bufconn.Listen(1 << 20)
	go func() { _ = s.server.Serve(listener) }()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	req.NoError(err)
	s.client = pb.NewRoomServiceClient(s.conn)
}

func (s *RoomServerSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.cancel()
	_ = s.store.Close()
}

// login returns the user id and an authenticated context.
func (s *RoomServerSuite) login(name string) (string, context.Context) {
	res, err := s.client.Login(context.Background(), &pb.LoginRequest{DisplayName: name})
	s.Require().NoError(err)
	ctx := metadata.AppendToOutgoingContext(context.Background(),
		"authorization", "Bearer "+res.Token)
	return res.UserId, ctx
}

// subscribe opens the event stream and pumps it into a channel.
func (s *RoomServerSuite) subscribe(ctx context.Context) <-chan *pb.Event {
	stream, err := s.client.Subscribe(ctx, &pb.SubscribeRequest{})
	s.Require().NoError(err)

	out := make(chan *pb.Event, 64)
	go func() {
		defer close(out)
		for {
			evt, err := stream.Recv()
			if err != nil {
				return
			}
			out <- evt
		}
	}()
	// Registration happens inside the server handler; give it a beat so
	// events published right after this call are not lost.
	time.Sleep(100 * time.Millisecond)
	return out
}

// nextMessage skips membership noise and returns the first message event.
func (s *RoomServerSuite) nextMessage(events <-chan *pb.Event) *pb.Message {
	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-events:
			if m, ok := evt.GetEvent().(*pb.Event_Message); ok {
				return m.Message
			}
		case <-deadline:
			s.FailNow("no message event received")
			return nil
		}
	}
}

func (s *RoomServerSuite) Test_Commands_Require_Token() {
	_, err := s.client.CreateRoom(context.Background(), &pb.CreateRoomRequest{Name: "general"})
	s.Require().Equal(codes.Unauthenticated, status.Code(err))

	md := metadata.Pairs("authorization", "Bearer not-a-token")
	_, err = s.client.ListRooms(metadata.NewOutgoingContext(context.Background(), md), &pb.ListRoomsRequest{})
	s.Require().Equal(codes.Unauthenticated, status.Code(err))
}

func (s *RoomServerSuite) Test_Error_Mapping_On_Wire() {
	req := s.Require()
	_, aliceCtx := s.login("alice")
	bobID, _ := s.login("bob")

	_, err := s.client.JoinRoom(aliceCtx, &pb.JoinRoomRequest{RoomId: "no-such-room"})
	req.Equal(codes.NotFound, status.Code(err))

	room, err := s.client.CreateRoom(aliceCtx, &pb.CreateRoomRequest{
		Name:       "ops",
		Visibility: pb.Visibility_VISIBILITY_INVITE_ONLY,
	})
	req.NoError(err)

	_, err = s.client.Invite(aliceCtx, &pb.InviteRequest{RoomId: room.Room.Id, InviteeId: bobID})
	req.NoError(err)
	_, err = s.client.Invite(aliceCtx, &pb.InviteRequest{RoomId: room.Room.Id, InviteeId: bobID})
	req.Equal(codes.AlreadyExists, status.Code(err))

	_, err = s.client.CreateRoom(aliceCtx, &pb.CreateRoomRequest{Name: ""})
	req.Equal(codes.InvalidArgument, status.Code(err))
}

// Room "general" with members A, B, C: A's "hi" gets sequence 1, both
// subscribed members observe it, and D (no membership) receives nothing.
func (s *RoomServerSuite) Test_Broadcast_To_Members_Only() {
	req := s.Require()
	_, aliceCtx := s.login("alice")
	_, bobCtx := s.login("bob")
	_, claraCtx := s.login("clara")
	_, daveCtx := s.login("dave")

	room, err := s.client.CreateRoom(aliceCtx, &pb.CreateRoomRequest{Name: "general"})
	req.NoError(err)
	_, err = s.client.JoinRoom(bobCtx, &pb.JoinRoomRequest{RoomId: room.Room.Id})
	req.NoError(err)
	_, err = s.client.JoinRoom(claraCtx, &pb.JoinRoomRequest{RoomId: room.Room.Id})
	req.NoError(err)

	bobEvents := s.subscribe(bobCtx)
	claraEvents := s.subscribe(claraCtx)
	daveEvents := s.subscribe(daveCtx)

	sent, err := s.client.SendMessage(aliceCtx, &pb.SendMessageRequest{
		RoomId: room.Room.Id,
		Text:   "hi",
	})
	req.NoError(err)
	req.Equal(uint64(1), sent.Sequence)

	for _, events := range []<-chan *pb.Event{bobEvents, claraEvents} {
		message := s.nextMessage(events)
		req.Equal("hi", message.Text)
		req.Equal(uint64(1), message.Sequence)
	}

	select {
	case evt := <-daveEvents:
		s.FailNowf("non-member received an event", "%v", evt)
	case <-time.After(300 * time.Millisecond):
	}
}

func (s *RoomServerSuite) Test_Invitee_Receives_Invite_Event() {
	req := s.Require()
	_, aliceCtx := s.login("alice")
	bobID, bobCtx := s.login("bob")

	room, err := s.client.CreateRoom(aliceCtx, &pb.CreateRoomRequest{
		Name:       "ops",
		Visibility: pb.Visibility_VISIBILITY_INVITE_ONLY,
	})
	req.NoError(err)

	bobEvents := s.subscribe(bobCtx)

	sent, err := s.client.Invite(aliceCtx, &pb.InviteRequest{RoomId: room.Room.Id, InviteeId: bobID})
	req.NoError(err)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-bobEvents:
			if invite, ok := evt.GetEvent().(*pb.Event_Invite); ok {
				req.Equal(sent.InvitationId, invite.Invite.Id)
				req.Equal(room.Room.Id, invite.Invite.RoomId)
				return
			}
		case <-deadline:
			s.FailNow("invite event never arrived")
		}
	}
}

func (s *RoomServerSuite) Test_History_Pages_After_Send() {
	req := s.Require()
	_, aliceCtx := s.login("alice")

	room, err := s.client.CreateRoom(aliceCtx, &pb.CreateRoomRequest{Name: "general"})
	req.NoError(err)
	for _, text := range []string{"one", "two", "three"} {
		_, err = s.client.SendMessage(aliceCtx, &pb.SendMessageRequest{RoomId: room.Room.Id, Text: text})
		req.NoError(err)
	}

	history, err := s.client.GetHistory(aliceCtx, &pb.GetHistoryRequest{RoomId: room.Room.Id})
	req.NoError(err)
	req.Len(history.Messages, 3)
	req.Equal("three", history.Messages[0].Text)
	req.Equal("one", history.Messages[2].Text)
}
