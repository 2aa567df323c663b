// Package email composes the messages the portal would send. Nothing leaves
// the process: messages are logged and kept in a short in-memory history.
package email

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const historySize = 100

type Message struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sentAt"`
}

type Service interface {
	SendWelcome(ctx context.Context, to, fullName string) error
	SendResetInstructions(ctx context.Context, contact string) error
}

type LogService struct {
	mu      sync.Mutex
	history []Message
	logger  *zap.Logger
	now     func() time.Time
}

// NewLogService returns a Service that logs every message instead of
// delivering it.
func NewLogService(logger *zap.Logger) *LogService {
	if logger == nil {
		logger = zap.L()
	}
	return &LogService{logger: logger.Named("email"), now: time.Now}
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *LogService) SendWelcome(ctx context.Context, to, fullName string) error {
	body := fmt.Sprintf("Здравствуйте, %s! Вы успешно зарегистрировались.", fullName)
	return s.send(ctx, to, "Регистрация успешна", body)
}

func (s *LogService) SendResetInstructions(ctx context.Context, contact string) error {
	body := "Инструкции по восстановлению пароля: перейдите по ссылке из этого сообщения."
	return s.send(ctx, contact, "Восстановление пароля", body)
}

func (s *LogService) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := Message{To: to, Subject: subject, Body: body, SentAt: s.now()}

	s.mu.Lock()
	s.history = append(s.history, msg)
	if len(s.history) > historySize {
		s.history = s.history[len(s.history)-historySize:]
	}
	s.mu.Unlock()

	s.logger.Info("email queued", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// Sent returns the most recent messages, oldest first.
func (s *LogService) Sent() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.history...)
}

type noopService struct{}

func (s *noopService) SendWelcome(_ context.Context, _, _ string) error {
	return nil
}

func (s *noopService) SendResetInstructions(_ context.Context, _ string) error {
	return nil
}
