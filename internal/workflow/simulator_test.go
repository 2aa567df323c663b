package workflow_test

import (
	"context"
	"testing"

	"go-course-portal/internal/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSimulator_Call(t *testing.T) {
	t.Run("infallible_by_default", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		sim := workflow.NewSimulator[string]("registration", 0, zap.New(core))

		err := sim.Call(context.Background(), "payload")

		require.NoError(t, err)
		entries := logs.FilterMessage("simulated submission").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "registration", entries[0].ContextMap()["form"])
	})

	t.Run("fails_below_rate", func(t *testing.T) {
		sim := workflow.NewSimulator[string]("login", 0.5, zap.NewNop()).
			WithRoll(func() float64 { return 0.49 })

		assert.Error(t, sim.Call(context.Background(), "payload"))
	})

	t.Run("passes_above_rate", func(t *testing.T) {
		sim := workflow.NewSimulator[string]("login", 0.5, zap.NewNop()).
			WithRoll(func() float64 { return 0.5 })

		assert.NoError(t, sim.Call(context.Background(), "payload"))
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		sim := workflow.NewSimulator[string]("login", 0, zap.NewNop())

		assert.ErrorIs(t, sim.Call(ctx, "payload"), context.Canceled)
	})
}
