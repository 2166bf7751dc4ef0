package contract

import (
	"context"
	"reflect"

	"roomhub/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one subscriber's outbound queue. Consume must never block the
// caller; Close ends the drain loop on the other side.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
	Close()
}

// IRegistry tracks live sessions keyed by (user, connection).
type IRegistry interface {
	Register(userID, connectionID string, sink EventSink) error
	Unregister(userID, connectionID string)
	ChannelsFor(userID string) []EventSink
}
