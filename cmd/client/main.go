// Thin terminal client: logs in, subscribes, and forwards typed commands to
// the server. All state lives server-side; this is an I/O shell around the
// protocol calls.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	pb "roomhub/proto/chat"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <display-name> [address]", os.Args[0])
	}
	displayName := os.Args[1]
	address := "localhost:8080"
	if len(os.Args) > 2 {
		address = os.Args[2]
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Connection failed: %v", err)
	}
	defer conn.Close()

	client := pb.NewRoomServiceClient(conn)

	login, err := client.Login(context.Background(), &pb.LoginRequest{DisplayName: displayName})
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	fmt.Printf("Logged in as %s (%s)\n", displayName, login.UserId)

	ctx := metadata.AppendToOutgoingContext(context.Background(),
		"authorization", "Bearer "+login.Token)

	stream, err := client.Subscribe(ctx, &pb.SubscribeRequest{})
	if err != nil {
		log.Fatalf("Subscribe failed: %v", err)
	}
	go drain(stream)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Commands: create <name> [invite-only] | join <room> | leave <room> | invite <room> <user> | accept <invitation> | decline <invitation> | send <room> <text> | history <room> | rooms | users")
	for scanner.Scan() {
		if err := dispatch(ctx, client, scanner.Text()); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func drain(stream grpc.ServerStreamingClient[pb.Event]) {
	for {
		evt, err := stream.Recv()
		if err != nil {
			log.Fatalf("Stream closed: %v", err)
		}
		switch e := evt.Event.(type) {
		case *pb.Event_Message:
			fmt.Printf("[%s #%d] %s: %s\n", e.Message.RoomId, e.Message.Sequence, e.Message.AuthorId, e.Message.Text)
		case *pb.Event_Invite:
			fmt.Printf("[invite %s] %s invites you to room %s\n", e.Invite.Id, e.Invite.InviterId, e.Invite.RoomId)
		case *pb.Event_Membership:
			verb := "left"
			if e.Membership.Joined {
				verb = "joined"
			}
			fmt.Printf("[%s] %s %s\n", e.Membership.RoomId, e.Membership.UserId, verb)
		case *pb.Event_Gap:
			fmt.Printf("[gap] %d events dropped, resync via history\n", e.Gap.Dropped)
		}
	}
}

func dispatch(ctx context.Context, client pb.RoomServiceClient, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "create":
		if len(fields) < 2 {
			return fmt.Errorf("usage: create <name> [invite-only]")
		}
		visibility := pb.Visibility_VISIBILITY_PUBLIC
		if len(fields) > 2 && fields[2] == "invite-only" {
			visibility = pb.Visibility_VISIBILITY_INVITE_ONLY
		}
		res, err := client.CreateRoom(ctx, &pb.CreateRoomRequest{Name: fields[1], Visibility: visibility})
		if err != nil {
			return err
		}
		fmt.Printf("room created: %s\n", res.Room.Id)
	case "join":
		if len(fields) < 2 {
			return fmt.Errorf("usage: join <room>")
		}
		_, err := client.JoinRoom(ctx, &pb.JoinRoomRequest{RoomId: fields[1]})
		return err
	case "leave":
		if len(fields) < 2 {
			return fmt.Errorf("usage: leave <room>")
		}
		_, err := client.LeaveRoom(ctx, &pb.LeaveRoomRequest{RoomId: fields[1]})
		return err
	case "invite":
		if len(fields) < 3 {
			return fmt.Errorf("usage: invite <room> <user>")
		}
		res, err := client.Invite(ctx, &pb.InviteRequest{RoomId: fields[1], InviteeId: fields[2]})
		if err != nil {
			return err
		}
		fmt.Printf("invitation sent: %s\n", res.InvitationId)
	case "accept", "decline":
		if len(fields) < 2 {
			return fmt.Errorf("usage: %s <invitation>", fields[0])
		}
		_, err := client.RespondInvite(ctx, &pb.RespondInviteRequest{
			InvitationId: fields[1],
			Accept:       fields[0] == "accept",
		})
		return err
	case "send":
		if len(fields) < 3 {
			return fmt.Errorf("usage: send <room> <text>")
		}
		_, err := client.SendMessage(ctx, &pb.SendMessageRequest{
			RoomId: fields[1],
			Text:   strings.Join(fields[2:], " "),
		})
		return err
	case "history":
		if len(fields) < 2 {
			return fmt.Errorf("usage: history <room>")
		}
		res, err := client.GetHistory(ctx, &pb.GetHistoryRequest{RoomId: fields[1]})
		if err != nil {
			return err
		}
		for _, m := range res.Messages {
			fmt.Printf("#%d %s: %s\n", m.Sequence, m.AuthorId, m.Text)
		}
	case "rooms":
		res, err := client.ListRooms(ctx, &pb.ListRoomsRequest{})
		if err != nil {
			return err
		}
		for _, r := range res.Rooms {
			fmt.Printf("%s  %s (%s, %d members)\n", r.Id, r.Name, r.Visibility, len(r.MemberIds))
		}
	case "users":
		res, err := client.ListUsers(ctx, &pb.ListUsersRequest{})
		if err != nil {
			return err
		}
		for _, u := range res.Users {
			fmt.Printf("%s  %s\n", u.Id, u.DisplayName)
		}
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
