package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	autherrors "go-course-portal/internal/auth/errors"
	"go-course-portal/internal/email"
	"go-course-portal/internal/form"
	"go-course-portal/internal/validation"
	"go-course-portal/internal/workflow"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Config tunes the simulated submissions of every form.
type Config struct {
	SubmitLatency   time.Duration
	RedirectDelay   time.Duration
	RedirectTarget  string
	ResetCloseDelay time.Duration
	FailureRate     float64
	Mode            form.Mode
	Clock           clockwork.Clock
	// Mailer receives the messages a successful submission triggers.
	Mailer email.Service
}

func DefaultConfig() Config {
	return Config{
		SubmitLatency:   1500 * time.Millisecond,
		RedirectDelay:   2000 * time.Millisecond,
		RedirectTarget:  "/",
		ResetCloseDelay: 3000 * time.Millisecond,
		Mode:            form.ValidateOnSubmit,
	}
}

type formSession interface {
	ID() string
	Kind() Kind
	View() FormView
	SetField(name, value string) error
	Submit() (validation.FieldErrors, error)
	Close()
}

// translate maps form and workflow errors to API errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, form.ErrUnknownField):
		return autherrors.ErrUnknownField.Wrap(err)
	case errors.Is(err, workflow.ErrInProgress):
		return autherrors.ErrSubmissionInProgress
	case errors.Is(err, workflow.ErrAlreadySucceeded):
		return autherrors.ErrAlreadySubmitted
	case errors.Is(err, workflow.ErrClosed):
		return autherrors.ErrSessionClosed
	}
	return err
}

func mailer(cfg Config) email.Service {
	if cfg.Mailer == nil {
		return email.NewNoopService()
	}
	return cfg.Mailer
}

// registrationRemote simulates the backend call and then sends the welcome
// message.
func registrationRemote(cfg Config, logger *zap.Logger) workflow.Remote[RegistrationInput] {
	sim := workflow.NewSimulator[RegistrationInput](string(KindRegistration), cfg.FailureRate, logger)
	mail := mailer(cfg)
	return workflow.RemoteFunc[RegistrationInput](func(ctx context.Context, in RegistrationInput) error {
		if err := sim.Call(ctx, in); err != nil {
			return err
		}
		return mail.SendWelcome(ctx, in.Email, in.FullName)
	})
}

func resetRemote(cfg Config, logger *zap.Logger) workflow.Remote[PasswordResetInput] {
	sim := workflow.NewSimulator[PasswordResetInput]("password-reset", cfg.FailureRate, logger)
	mail := mailer(cfg)
	return workflow.RemoteFunc[PasswordResetInput](func(ctx context.Context, in PasswordResetInput) error {
		if err := sim.Call(ctx, in); err != nil {
			return err
		}
		return mail.SendResetInstructions(ctx, in.Contact)
	})
}

func submissionError(snap workflow.Snapshot) string {
	if snap.State != workflow.Failed || snap.LastError == nil {
		return ""
	}
	return "Не удалось отправить данные. Попробуйте ещё раз."
}

func submit[T any, P interface {
	*T
	form.Fields
}](c *form.Controller[T, P]) (validation.FieldErrors, error) {
	res, err := c.Submit()
	if err != nil {
		return nil, translate(err)
	}
	if !res.Valid {
		return res.Errors, nil
	}
	return nil, nil
}

// ==================== REGISTRATION ====================

type registrationSession struct {
	id       string
	form     *form.Controller[RegistrationInput, *RegistrationInput]
	flow     *workflow.Workflow[RegistrationInput]
	redirect *workflow.Redirect
}

func newRegistrationSession(id string, cfg Config, logger *zap.Logger) *registrationSession {
	s := &registrationSession{id: id, redirect: &workflow.Redirect{}}

	s.flow = workflow.New[RegistrationInput](workflow.Config{
		Name:    string(KindRegistration),
		Latency: cfg.SubmitLatency,
		Clock:   cfg.Clock,
		Logger:  logger,
	}, registrationRemote(cfg, logger))

	var nav workflow.Navigator = s.redirect
	target := cfg.RedirectTarget
	s.flow.OnSuccess(cfg.RedirectDelay, func() { nav.Navigate(target) })

	s.form = form.New[RegistrationInput](registrationSchema, s.flow, cfg.Mode)
	return s
}

func (s *registrationSession) ID() string { return s.id }
func (s *registrationSession) Kind() Kind { return KindRegistration }
func (s *registrationSession) Close()     { s.flow.Close() }

func (s *registrationSession) SetField(name, value string) error {
	return translate(s.form.SetField(name, value))
}

func (s *registrationSession) Submit() (validation.FieldErrors, error) {
	return submit(s.form)
}

func (s *registrationSession) View() FormView {
	snap := s.flow.Snapshot()
	values := s.form.Values()

	return FormView{
		ID:              s.id,
		Kind:            KindRegistration,
		State:           snap.State.String(),
		IsSubmitting:    snap.IsSubmitting(),
		IsSuccess:       snap.IsSuccess(),
		Values:          publicValues(RegistrationFields, values.Field),
		Errors:          s.form.Errors().Messages(),
		SubmissionError: submissionError(snap),
		Redirect:        s.redirect.Pending(),
	}
}

// ==================== LOGIN ====================

type loginSession struct {
	id    string
	form  *form.Controller[LoginInput, *LoginInput]
	flow  *workflow.Workflow[LoginInput]
	reset *resetOverlay

	mu     sync.Mutex
	notice string
}

func newLoginSession(id string, cfg Config, logger *zap.Logger) *loginSession {
	s := &loginSession{id: id}

	s.flow = workflow.New[LoginInput](workflow.Config{
		Name:    string(KindLogin),
		Latency: cfg.SubmitLatency,
		Clock:   cfg.Clock,
		Logger:  logger,
	}, workflow.NewSimulator[LoginInput](string(KindLogin), cfg.FailureRate, logger))
	s.flow.OnSuccess(0, func() { s.setNotice(LoginNotice) })

	s.form = form.New[LoginInput](loginSchema, s.flow, cfg.Mode)
	s.reset = newResetOverlay(cfg, logger)
	return s
}

func (s *loginSession) ID() string { return s.id }
func (s *loginSession) Kind() Kind { return KindLogin }

func (s *loginSession) Close() {
	s.flow.Close()
	s.reset.flow.Close()
}

func (s *loginSession) SetField(name, value string) error {
	return translate(s.form.SetField(name, value))
}

func (s *loginSession) Submit() (validation.FieldErrors, error) {
	return submit(s.form)
}

func (s *loginSession) setNotice(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = msg
}

// Acknowledge dismisses the sign-in notice. The entered values stay.
func (s *loginSession) Acknowledge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.notice == "" {
		return autherrors.ErrNothingToAcknowledge
	}
	s.notice = ""
	s.flow.Reset()
	return nil
}

func (s *loginSession) View() FormView {
	snap := s.flow.Snapshot()
	values := s.form.Values()

	s.mu.Lock()
	notice := s.notice
	s.mu.Unlock()

	reset := s.reset.View()
	return FormView{
		ID:              s.id,
		Kind:            KindLogin,
		State:           snap.State.String(),
		IsSubmitting:    snap.IsSubmitting(),
		IsSuccess:       snap.IsSuccess(),
		Values:          publicValues(LoginFields, values.Field),
		Errors:          s.form.Errors().Messages(),
		SubmissionError: submissionError(snap),
		Notice:          notice,
		Reset:           &reset,
	}
}

// ==================== PASSWORD RESET OVERLAY ====================

// resetOverlay is an independent form + workflow living in a dismissible
// dialog. Success shows a confirmation, then the dialog resets and closes
// itself.
type resetOverlay struct {
	form *form.Controller[PasswordResetInput, *PasswordResetInput]
	flow *workflow.Workflow[PasswordResetInput]

	mu   sync.Mutex
	open bool
}

func newResetOverlay(cfg Config, logger *zap.Logger) *resetOverlay {
	o := &resetOverlay{}

	o.flow = workflow.New[PasswordResetInput](workflow.Config{
		Name:    "password-reset",
		Latency: cfg.SubmitLatency,
		Clock:   cfg.Clock,
		Logger:  logger,
	}, resetRemote(cfg, logger))
	o.flow.OnSuccess(cfg.ResetCloseDelay, o.closeAfterConfirmation)

	o.form = form.New[PasswordResetInput](passwordResetSchema, o.flow, cfg.Mode)
	return o
}

func (o *resetOverlay) IsOpen() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.open
}

// closeAfterConfirmation runs once the confirmation has been shown. It only
// closes the dialog that succeeded: after a dismiss and reopen the flow is no
// longer in Succeeded and the fresh dialog stays.
func (o *resetOverlay) closeAfterConfirmation() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.flow.ResetIfSucceeded() {
		o.open = false
	}
}

// Open shows the dialog with an empty form.
func (o *resetOverlay) Open() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.flow.Reset()
	o.form.Reset()
	o.open = true
}

// Dismiss hides the dialog and drops whatever it was doing.
func (o *resetOverlay) Dismiss() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.open = false
	o.flow.Reset()
}

func (o *resetOverlay) SetField(name, value string) error {
	if !o.IsOpen() {
		return autherrors.ErrResetClosed
	}
	return translate(o.form.SetField(name, value))
}

func (o *resetOverlay) Submit() (validation.FieldErrors, error) {
	if !o.IsOpen() {
		return nil, autherrors.ErrResetClosed
	}
	return submit(o.form)
}

func (o *resetOverlay) View() ResetView {
	snap := o.flow.Snapshot()
	values := o.form.Values()

	v := ResetView{
		Open:            o.IsOpen(),
		State:           snap.State.String(),
		IsSubmitting:    snap.IsSubmitting(),
		IsSuccess:       snap.IsSuccess(),
		Values:          publicValues(PasswordResetFields, values.Field),
		Errors:          o.form.Errors().Messages(),
		SubmissionError: submissionError(snap),
	}
	if snap.IsSuccess() {
		v.Confirmation = ResetConfirmation
	}
	return v
}

func wrongKind(s formSession, want Kind) error {
	return fmt.Errorf("%w: %s session, want %s", autherrors.ErrWrongSessionKind, s.Kind(), want)
}
