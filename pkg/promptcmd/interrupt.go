package promptcmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
)

// interrupter owns the running-task slot. At most one command holds it.
type interrupter struct {
	mu     sync.Mutex
	cancel context.CancelCauseFunc

	notify func(c chan<- os.Signal, sig ...os.Signal)
	stop   func(c chan<- os.Signal)

	signals chan os.Signal
	quit    chan struct{}
	done    chan struct{}
}

func newInterrupter() *interrupter {
	return &interrupter{
		notify: signal.Notify,
		stop:   signal.Stop,
	}
}

// begin installs a cancellable context for the command about to run.
// The returned func clears the slot and reports whether the command was interrupted.
func (i *interrupter) begin(parent context.Context) (context.Context, func() bool) {
	ctx, cancel := context.WithCancelCause(parent)

	i.mu.Lock()
	i.cancel = cancel
	i.mu.Unlock()

	return ctx, func() bool {
		i.mu.Lock()
		i.cancel = nil
		i.mu.Unlock()

		interrupted := errors.Is(context.Cause(ctx), ErrCommandCanceled)
		cancel(nil)
		return interrupted
	}
}

func (i *interrupter) interrupt() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.cancel == nil {
		return false
	}
	i.cancel(ErrCommandCanceled)
	return true
}

// listen routes SIGINT to interrupt until close is called.
func (i *interrupter) listen() {
	i.signals = make(chan os.Signal, 1)
	i.quit = make(chan struct{})
	i.done = make(chan struct{})
	i.notify(i.signals, os.Interrupt)

	go func() {
		defer close(i.done)
		for {
			select {
			case <-i.signals:
				i.interrupt()
			case <-i.quit:
				return
			}
		}
	}()
}

func (i *interrupter) close() {
	if i.signals == nil {
		return
	}
	i.stop(i.signals)
	close(i.quit)
	<-i.done
	i.signals = nil
}
