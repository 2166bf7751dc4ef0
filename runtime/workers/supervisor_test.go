package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type flakyWorker struct {
	runs     atomic.Int32
	failures int32
}

func (w *flakyWorker) Run(context.Context) error {
	if w.runs.Add(1) <= w.failures {
		panic("worker blew up")
	}
	return nil
}

type blockingWorker struct{}

func (blockingWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func Test_Supervisor_Restarts_Panicking_Worker(t *testing.T) {
	req := require.New(t)
	sup := NewSupervisor(slog.Default(), time.Millisecond)

	worker := &flakyWorker{failures: 2}
	sup.Add(worker)

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor never finished")
	}
	req.Equal(int32(3), worker.runs.Load())
}

func Test_Stop_Cancels_Running_Workers(t *testing.T) {
	req := require.New(t)
	sup := NewSupervisor(slog.Default(), time.Millisecond)
	sup.Add(blockingWorker{})

	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()

	// Give the worker time to start before stopping.
	time.Sleep(20 * time.Millisecond)
	sup.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop")
	}
	req.NotNil(sup.Cancel)
}
