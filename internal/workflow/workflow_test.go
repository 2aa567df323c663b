package workflow_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	mock "go-course-portal/internal/mock/workflow"
	"go-course-portal/internal/workflow"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	latency  = 1500 * time.Millisecond
	waitFor  = time.Second
	pollTick = 5 * time.Millisecond
)

type countingRemote struct {
	calls atomic.Int32
	err   error
}

func (r *countingRemote) Call(_ context.Context, _ string) error {
	r.calls.Add(1)
	return r.err
}

func newWorkflow(clock clockwork.Clock, remote workflow.Remote[string]) *workflow.Workflow[string] {
	return workflow.New[string](workflow.Config{
		Name:    "test",
		Latency: latency,
		Clock:   clock,
		Logger:  zap.NewNop(),
	}, remote)
}

func waitState(t *testing.T, wf *workflow.Workflow[string], want workflow.State) {
	t.Helper()
	require.Eventually(t, func() bool { return wf.State() == want }, waitFor, pollTick,
		"want state %s, have %s", want, wf.State())
}

func TestWorkflow_Submit(t *testing.T) {
	t.Run("submitting_until_full_delay", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		remote := &countingRemote{}
		wf := newWorkflow(clock, remote)
		defer wf.Close()

		require.NoError(t, wf.Submit("values"))
		snap := wf.Snapshot()
		assert.Equal(t, workflow.Submitting, snap.State)
		assert.True(t, snap.IsSubmitting())
		assert.False(t, snap.IsSuccess())

		clock.Advance(latency - time.Millisecond)
		assert.Equal(t, workflow.Submitting, wf.State())
		assert.Zero(t, remote.calls.Load())

		clock.Advance(time.Millisecond)
		waitState(t, wf, workflow.Succeeded)
		assert.EqualValues(t, 1, remote.calls.Load())
		assert.Zero(t, wf.Snapshot().PendingTimers)
	})

	t.Run("rejects_concurrent_submit", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		remote := &countingRemote{}
		wf := newWorkflow(clock, remote)
		defer wf.Close()

		require.NoError(t, wf.Submit("first"))
		err := wf.Submit("second")
		assert.ErrorIs(t, err, workflow.ErrInProgress)
		assert.Equal(t, 1, wf.Snapshot().PendingTimers)

		clock.Advance(latency)
		waitState(t, wf, workflow.Succeeded)
		assert.EqualValues(t, 1, remote.calls.Load())
		assert.Equal(t, 1, wf.Snapshot().Attempts)
	})

	t.Run("succeeded_is_terminal", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		wf := newWorkflow(clock, &countingRemote{})
		defer wf.Close()

		require.NoError(t, wf.Submit("v"))
		clock.Advance(latency)
		waitState(t, wf, workflow.Succeeded)

		assert.ErrorIs(t, wf.Submit("v"), workflow.ErrAlreadySucceeded)
	})

	t.Run("remote_failure_allows_retry", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		remote := &countingRemote{err: errors.New("down")}
		wf := newWorkflow(clock, remote)
		defer wf.Close()

		require.NoError(t, wf.Submit("v"))
		clock.Advance(latency)
		waitState(t, wf, workflow.Failed)
		assert.ErrorIs(t, wf.Snapshot().LastError, workflow.ErrRemoteFailure)

		remote.err = nil
		require.NoError(t, wf.Submit("v"))
		assert.Nil(t, wf.Snapshot().LastError)
		clock.Advance(latency)
		waitState(t, wf, workflow.Succeeded)
		assert.Equal(t, 2, wf.Snapshot().Attempts)
	})
}

func TestWorkflow_OnSuccess(t *testing.T) {
	t.Run("delayed_navigation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		nav := mock.NewMockNavigator(ctrl)
		clock := clockwork.NewFakeClock()
		wf := newWorkflow(clock, &countingRemote{})
		defer wf.Close()

		navigated := make(chan struct{})
		nav.EXPECT().Navigate("/").Do(func(string) { close(navigated) }).Times(1)
		wf.OnSuccess(2*time.Second, func() { nav.Navigate("/") })

		require.NoError(t, wf.Submit("v"))
		clock.Advance(latency)
		waitState(t, wf, workflow.Succeeded)
		assert.Equal(t, 1, wf.Snapshot().PendingTimers)

		clock.Advance(2*time.Second - time.Millisecond)
		select {
		case <-navigated:
			t.Fatal("navigated before the redirect delay")
		case <-time.After(20 * time.Millisecond):
		}

		clock.Advance(time.Millisecond)
		select {
		case <-navigated:
		case <-time.After(waitFor):
			t.Fatal("navigation never happened")
		}
	})

	t.Run("inline_follow_up", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		wf := newWorkflow(clock, &countingRemote{})
		defer wf.Close()

		var ran atomic.Bool
		wf.OnSuccess(0, func() { ran.Store(true) })

		require.NoError(t, wf.Submit("v"))
		clock.Advance(latency)
		require.Eventually(t, ran.Load, waitFor, pollTick)
		assert.Equal(t, workflow.Succeeded, wf.State())
	})

	t.Run("reset_after_confirmation", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		wf := newWorkflow(clock, &countingRemote{})
		defer wf.Close()
		wf.OnSuccess(3*time.Second, wf.Reset)

		require.NoError(t, wf.Submit("v"))
		clock.Advance(latency)
		waitState(t, wf, workflow.Succeeded)

		clock.Advance(3 * time.Second)
		waitState(t, wf, workflow.Idle)
		assert.NoError(t, wf.Submit("again"))
	})
}

func TestWorkflow_Close(t *testing.T) {
	t.Run("teardown_mid_submitting", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		remote := &countingRemote{}
		wf := newWorkflow(clock, remote)

		require.NoError(t, wf.Submit("v"))
		wf.Close()
		clock.Advance(latency)

		assert.Never(t, func() bool { return remote.calls.Load() > 0 }, 50*time.Millisecond, pollTick)
		snap := wf.Snapshot()
		assert.True(t, snap.Closed)
		assert.Equal(t, workflow.Submitting, snap.State)
		assert.Zero(t, snap.PendingTimers)
		assert.ErrorIs(t, wf.Submit("v"), workflow.ErrClosed)

		wf.Close()
	})

	t.Run("teardown_cancels_redirect", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		wf := newWorkflow(clock, &countingRemote{})
		redirect := &workflow.Redirect{}
		wf.OnSuccess(2*time.Second, func() { redirect.Navigate("/") })

		require.NoError(t, wf.Submit("v"))
		clock.Advance(latency)
		waitState(t, wf, workflow.Succeeded)

		wf.Close()
		clock.Advance(2 * time.Second)

		assert.Never(t, func() bool { return redirect.Pending() != "" }, 50*time.Millisecond, pollTick)
	})
}

func TestWorkflow_ResetDropsInFlightCompletion(t *testing.T) {
	clock := clockwork.NewFakeClock()
	remote := &countingRemote{}
	wf := newWorkflow(clock, remote)
	defer wf.Close()

	require.NoError(t, wf.Submit("v"))
	wf.Reset()
	clock.Advance(latency)

	assert.Never(t, func() bool { return remote.calls.Load() > 0 }, 50*time.Millisecond, pollTick)
	assert.Equal(t, workflow.Idle, wf.State())
}

func TestWorkflow_ResetCancelsFollowUps(t *testing.T) {
	clock := clockwork.NewFakeClock()
	wf := newWorkflow(clock, &countingRemote{})
	defer wf.Close()

	var ran atomic.Bool
	wf.OnSuccess(time.Second, func() { ran.Store(true) })

	require.NoError(t, wf.Submit("v"))
	clock.Advance(latency)
	waitState(t, wf, workflow.Succeeded)

	wf.Reset()
	clock.Advance(time.Second)

	assert.Never(t, ran.Load, 50*time.Millisecond, pollTick)
	assert.Zero(t, wf.Snapshot().PendingTimers)
}

func TestWorkflow_ResetIfSucceeded(t *testing.T) {
	t.Run("idle_is_untouched", func(t *testing.T) {
		wf := newWorkflow(clockwork.NewFakeClock(), &countingRemote{})
		defer wf.Close()

		assert.False(t, wf.ResetIfSucceeded())
		assert.Equal(t, workflow.Idle, wf.State())
	})

	t.Run("submitting_is_untouched", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		remote := &countingRemote{}
		wf := newWorkflow(clock, remote)
		defer wf.Close()

		require.NoError(t, wf.Submit("v"))
		assert.False(t, wf.ResetIfSucceeded())
		assert.Equal(t, workflow.Submitting, wf.State())

		clock.Advance(latency)
		waitState(t, wf, workflow.Succeeded)
		assert.EqualValues(t, 1, remote.calls.Load())
	})

	t.Run("succeeded_returns_to_idle", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		wf := newWorkflow(clock, &countingRemote{})
		defer wf.Close()

		require.NoError(t, wf.Submit("v"))
		clock.Advance(latency)
		waitState(t, wf, workflow.Succeeded)

		assert.True(t, wf.ResetIfSucceeded())
		assert.Equal(t, workflow.Idle, wf.State())
		assert.False(t, wf.ResetIfSucceeded())
	})

	t.Run("closed_is_untouched", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		wf := newWorkflow(clock, &countingRemote{})

		require.NoError(t, wf.Submit("v"))
		clock.Advance(latency)
		waitState(t, wf, workflow.Succeeded)
		wf.Close()

		assert.False(t, wf.ResetIfSucceeded())
	})
}

func TestRedirect(t *testing.T) {
	r := &workflow.Redirect{}
	assert.Empty(t, r.Pending())

	r.Navigate("/a")
	r.Navigate("/b")

	assert.Equal(t, "/b", r.Pending())
	assert.Equal(t, []string{"/a", "/b"}, r.History())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", workflow.Idle.String())
	assert.Equal(t, "submitting", workflow.Submitting.String())
	assert.Equal(t, "succeeded", workflow.Succeeded.String())
	assert.Equal(t, "failed", workflow.Failed.String())
	assert.Equal(t, "unknown", workflow.State(42).String())
}
