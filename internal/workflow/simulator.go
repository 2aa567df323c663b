package workflow

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// Simulator stands in for the backend. It traces the submitted values and
// fails with the configured probability; zero keeps it infallible.
type Simulator[T any] struct {
	label       string
	failureRate float64
	roll        func() float64
	logger      *zap.Logger
}

func NewSimulator[T any](label string, failureRate float64, logger *zap.Logger) *Simulator[T] {
	if logger == nil {
		logger = zap.L()
	}
	return &Simulator[T]{
		label:       label,
		failureRate: failureRate,
		roll:        rand.Float64,
		logger:      logger.Named("simulator"),
	}
}

// WithRoll replaces the random source, mostly for tests.
func (s *Simulator[T]) WithRoll(roll func() float64) *Simulator[T] {
	s.roll = roll
	return s
}

func (s *Simulator[T]) Call(ctx context.Context, values T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// zap.Any picks up zapcore.ObjectMarshaler, which the form inputs use
	// to mask secrets.
	s.logger.Info("simulated submission",
		zap.String("form", s.label),
		zap.Any("values", values),
	)

	if s.failureRate > 0 && s.roll() < s.failureRate {
		return fmt.Errorf("%s: simulated outage", s.label)
	}
	return nil
}
