// Package workflow drives the Idle -> Submitting -> Succeeded lifecycle of a
// form submission. Every timer it starts is owned by the workflow and is
// stopped on Reset or Close, so callbacks never touch a discarded form.
package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const DefaultLatency = 1500 * time.Millisecond

// Remote performs the (simulated) remote call for submitted values.
type Remote[T any] interface {
	Call(ctx context.Context, values T) error
}

// RemoteFunc adapts a function to Remote.
type RemoteFunc[T any] func(ctx context.Context, values T) error

func (f RemoteFunc[T]) Call(ctx context.Context, values T) error {
	return f(ctx, values)
}

type Config struct {
	Name    string
	Latency time.Duration
	Clock   clockwork.Clock
	Logger  *zap.Logger
}

type followUp struct {
	delay  time.Duration
	action func()
}

type Workflow[T any] struct {
	mu     sync.Mutex
	name   string
	clock  clockwork.Clock
	remote Remote[T]
	logger *zap.Logger

	latency   time.Duration
	followUps []followUp

	ctx    context.Context
	cancel context.CancelFunc

	state      State
	attempts   int
	lastErr    error
	closed     bool
	generation uint64
	nextTimer  uint64
	timers     map[uint64]clockwork.Timer
}

func New[T any](cfg Config, remote Remote[T]) *Workflow[T] {
	if cfg.Latency <= 0 {
		cfg.Latency = DefaultLatency
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.L()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Workflow[T]{
		name:    cfg.Name,
		clock:   cfg.Clock,
		remote:  remote,
		logger:  cfg.Logger.Named("workflow").With(zap.String("workflow", cfg.Name)),
		latency: cfg.Latency,
		ctx:     ctx,
		cancel:  cancel,
		timers:  make(map[uint64]clockwork.Timer),
	}
}

// OnSuccess registers an action to run once the workflow reaches Succeeded.
// A zero delay runs the action right after the transition; otherwise it runs
// on a timer owned by the workflow.
func (w *Workflow[T]) OnSuccess(delay time.Duration, action func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.followUps = append(w.followUps, followUp{delay: delay, action: action})
}

// Submit moves Idle or Failed to Submitting and starts the latency timer.
// Submitting is a guard: concurrent submits are rejected, not queued.
func (w *Workflow[T]) Submit(values T) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	switch w.state {
	case Submitting:
		return ErrInProgress
	case Succeeded:
		return ErrAlreadySucceeded
	}

	w.state = Submitting
	w.attempts++
	w.lastErr = nil
	gen := w.generation
	w.scheduleLocked(w.latency, func() { w.complete(gen, values) })

	w.logger.Debug("submission started", zap.Int("attempt", w.attempts))
	return nil
}

func (w *Workflow[T]) complete(gen uint64, values T) {
	if !w.current(gen, Submitting) {
		return
	}

	err := w.remote.Call(w.ctx, values)

	w.mu.Lock()
	if w.closed || w.generation != gen || w.state != Submitting {
		w.mu.Unlock()
		return
	}

	if err != nil {
		w.state = Failed
		w.lastErr = fmt.Errorf("%w: %w", ErrRemoteFailure, err)
		w.mu.Unlock()
		w.logger.Warn("submission failed", zap.Error(err))
		return
	}

	w.state = Succeeded
	var inline []func()
	for _, f := range w.followUps {
		if f.delay <= 0 {
			inline = append(inline, f.action)
			continue
		}
		w.scheduleLocked(f.delay, f.action)
	}
	w.mu.Unlock()

	w.logger.Debug("submission succeeded")
	for _, action := range inline {
		action()
	}
}

func (w *Workflow[T]) current(gen uint64, state State) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.closed && w.generation == gen && w.state == state
}

// scheduleLocked starts an owned timer. The callback runs only if the timer
// is still registered when it fires.
func (w *Workflow[T]) scheduleLocked(d time.Duration, fn func()) {
	id := w.nextTimer
	w.nextTimer++
	gen := w.generation
	w.timers[id] = w.clock.AfterFunc(d, func() {
		w.mu.Lock()
		if _, ok := w.timers[id]; !ok || w.generation != gen || w.closed {
			delete(w.timers, id)
			w.mu.Unlock()
			return
		}
		delete(w.timers, id)
		w.mu.Unlock()
		fn()
	})
}

func (w *Workflow[T]) stopTimersLocked() {
	for id, t := range w.timers {
		t.Stop()
		delete(w.timers, id)
	}
}

// Reset cancels pending timers and returns to Idle.
func (w *Workflow[T]) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.stopTimersLocked()
	w.generation++
	w.state = Idle
	w.lastErr = nil
}

// ResetIfSucceeded returns to Idle only from Succeeded, in one step. It
// reports whether it did.
func (w *Workflow[T]) ResetIfSucceeded() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.state != Succeeded {
		return false
	}
	w.stopTimersLocked()
	w.generation++
	w.state = Idle
	w.lastErr = nil
	return true
}

// Close releases the workflow: timers are stopped, an in-flight remote call
// is cancelled and later submits fail with ErrClosed. Safe to call twice.
func (w *Workflow[T]) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	w.stopTimersLocked()
	w.generation++
	w.cancel()
	w.logger.Debug("workflow closed", zap.Stringer("state", w.state))
}

func (w *Workflow[T]) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Snapshot{
		State:         w.state,
		Attempts:      w.attempts,
		LastError:     w.lastErr,
		PendingTimers: len(w.timers),
		Closed:        w.closed,
	}
}

func (w *Workflow[T]) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}
