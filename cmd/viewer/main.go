// Viewer opens the store read-only and serves the HTML inspector. It can run
// while the server holds the Badger lock.
package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"google.golang.org/protobuf/proto"

	"roomhub/internal"
	pb "roomhub/proto/chat"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	ViewerPort     int    `env:"VIEWER_PORT,default=8090"`
}

func main() {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// BypassLockGuard allows opening while the server holds the lock.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	stats := func() map[string]any {
		return map[string]any{
			"Mode": "Viewer (Read-Only)",
			"Time": time.Now().Format(time.RFC822),
		}
	}

	fmt.Printf("Viewer started at http://localhost:%d/inspect\n", config.ViewerPort)
	internal.StartDebugServer(db, config.ViewerPort, "/inspect", chatMapper, stats)

	select {}
}

// chatMapper decodes each collection's record type for display.
func chatMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	switch {
	case strings.HasPrefix(key, "users:"):
		var p pb.User
		if proto.Unmarshal(val, &p) == nil {
			row.Detail = p.DisplayName
			row.Timestamp = formatNano(p.CreatedAt)
		}
	case strings.HasPrefix(key, "rooms:"):
		var p pb.Room
		if proto.Unmarshal(val, &p) == nil {
			row.Detail = fmt.Sprintf("%s (%s, closed=%t)", p.Name, p.Visibility, p.Closed)
			row.Timestamp = formatNano(p.CreatedAt)
		}
	case strings.HasPrefix(key, "memberships:"):
		var p pb.Membership
		if proto.Unmarshal(val, &p) == nil {
			row.Detail = fmt.Sprintf("user %s in room %s", p.UserId, p.RoomId)
			row.Timestamp = formatNano(p.JoinedAt)
		}
	case strings.HasPrefix(key, "invitations:"):
		var p pb.Invitation
		if proto.Unmarshal(val, &p) == nil {
			row.Detail = fmt.Sprintf("%s -> %s (%s)", p.InviterId, p.InviteeId, p.Status)
			row.Timestamp = formatNano(p.CreatedAt)
		}
	case strings.HasPrefix(key, "messages:"):
		var p pb.Message
		if proto.Unmarshal(val, &p) == nil {
			row.Detail = fmt.Sprintf("#%d %s: %s", p.Sequence, p.AuthorId, p.Text)
			row.Timestamp = formatNano(p.CreatedAt)
		}
	}
	return row
}

func formatNano(nano int64) string {
	return time.Unix(0, nano).UTC().Format("2006-01-02 15:04:05")
}
