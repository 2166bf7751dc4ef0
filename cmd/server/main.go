package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"roomhub/auth"
	"roomhub/domain/event"
	server2 "roomhub/grpc/server"
	"roomhub/logs"
	pb "roomhub/proto/chat"
	"roomhub/repositories"
	"roomhub/runtime"
	"roomhub/runtime/workers"
	"roomhub/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	store, err := repositories.OpenStore(config.BadgerFilepath, log)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	// Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = store.Close()
	}()

	// 3. Repositories & Runtime
	userRepository := repositories.NewUserRepository(store)
	roomRepository := repositories.NewRoomRepository(store)
	messageRepository := repositories.NewMessageRepository(store, log, config.LimitMessages)

	events := make(chan event.DomainEvent, config.EventBufferSize)
	registry := runtime.NewRegistry(config.AllowMultipleSession)
	manager := runtime.NewManager(roomRepository, messageRepository, userRepository, events, log)
	if err = manager.Load(); err != nil {
		return fmt.Errorf("state rebuild failed: %w", err)
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervised workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewBroadcaster(log, events, manager, registry))
	go sup.Run(ctx)

	// 6. gRPC Server Setup
	authService := services.NewAuthService(userRepository, config.TokenDuration)
	chatService := services.NewChatService(manager, messageRepository, userRepository)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.UnaryInterceptor(auth.UnaryInterceptor),
		grpc.StreamInterceptor(auth.StreamInterceptor),
	)
	pb.RegisterRoomServiceServer(s, server2.NewRoomServer(
		log, authService, chatService, registry, config.ConnectionBufferSize))

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 8. Final Cleanup
	s.GracefulStop()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
