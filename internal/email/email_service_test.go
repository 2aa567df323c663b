package email_test

import (
	"context"
	"testing"

	"go-course-portal/internal/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogService(t *testing.T) {
	ctx := context.Background()

	t.Run("records_and_logs", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		svc := email.NewLogService(zap.New(core))

		require.NoError(t, svc.SendWelcome(ctx, "ivan@example.com", "Иван Петров"))
		require.NoError(t, svc.SendResetInstructions(ctx, "+79991234567"))

		sent := svc.Sent()
		require.Len(t, sent, 2)
		assert.Equal(t, "ivan@example.com", sent[0].To)
		assert.Contains(t, sent[0].Body, "Иван Петров")
		assert.Equal(t, "+79991234567", sent[1].To)
		assert.Equal(t, 2, logs.FilterMessage("email queued").Len())
	})

	t.Run("history_is_bounded", func(t *testing.T) {
		svc := email.NewLogService(zap.NewNop())
		for i := 0; i < 150; i++ {
			require.NoError(t, svc.SendResetInstructions(ctx, "ivan@example.com"))
		}
		assert.Len(t, svc.Sent(), 100)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		svc := email.NewLogService(zap.NewNop())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, svc.SendWelcome(cctx, "a@b.c", "x"), context.Canceled)
		assert.Empty(t, svc.Sent())
	})
}

func TestNoopService(t *testing.T) {
	svc := email.NewNoopService()
	assert.NoError(t, svc.SendWelcome(context.Background(), "a@b.c", "x"))
	assert.NoError(t, svc.SendResetInstructions(context.Background(), "a@b.c"))
}
