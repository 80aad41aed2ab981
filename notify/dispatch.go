// Package notify holds the outbound best-effort collaborators: the chat
// webhook, the spreadsheet logging webhook, the requester email, and the
// telemetry event stream. Every collaborator is constructed from optional
// configuration and becomes a silent no-op when its credential is absent.
// Failures here are logged and discarded; they never reach the caller.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const dispatchTimeout = 15 * time.Second

// Dispatcher runs collaborator calls as fire-and-forget tasks. Results are
// discarded except for logging; Wait exists for shutdown and tests.
type Dispatcher struct {
	log *slog.Logger
	wg  sync.WaitGroup
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		log: slog.Default().With("component", "notify.dispatcher"),
	}
}

// Go runs fn on its own goroutine with a bounded context. Errors are logged
// under the task name and otherwise dropped.
func (d *Dispatcher) Go(name string, fn func(context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			d.log.Error("best-effort dispatch failed", "task", name, "err", err)
		}
	}()
}

// Wait blocks until every dispatched task has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
