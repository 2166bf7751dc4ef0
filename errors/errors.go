package errors

import "fmt"

var (
	// ErrValidation marks malformed input; reported to the caller, never retried.
	ErrValidation = fmt.Errorf("validation failed")
	// ErrNotFound marks an absent room, invitation, user or membership.
	ErrNotFound = fmt.Errorf("not found")
	// ErrPermissionDenied marks a caller who is not a member, not the invitee,
	// or not allowed into an invite-only room.
	ErrPermissionDenied = fmt.Errorf("permission denied")
	// ErrConflict marks a duplicate pending invitation or an already-resolved one.
	ErrConflict = fmt.Errorf("conflict")
	// ErrStorage marks a persistence I/O failure. Fatal to the triggering
	// operation; the store never retries on its own.
	ErrStorage = fmt.Errorf("storage failure")
	// ErrAlreadyConnected is returned by the session registry when the
	// single-session policy is active and the user already holds a stream.
	ErrAlreadyConnected = fmt.Errorf("already connected")
	// ErrDisconnected marks a session channel closed mid-delivery. Logged,
	// never surfaced to the publisher.
	ErrDisconnected = fmt.Errorf("disconnected")

	// ErrTokenGeneration marks a JWT signing failure during login.
	ErrTokenGeneration = fmt.Errorf("token generation failed")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)
