package auth

import (
	"context"
	"errors"
	"slices"

	autherrors "go-course-portal/internal/auth/errors"
	"go-course-portal/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=../mock/auth/auth_service_mock.go -package=mock
type Service interface {
	StartRegistration(ctx context.Context) (FormView, error)
	StartLogin(ctx context.Context) (FormView, error)
	Get(ctx context.Context, id string) (FormView, error)
	SetFields(ctx context.Context, id string, fields map[string]string) (FormView, error)
	Submit(ctx context.Context, id string) (SubmitResult, error)
	Acknowledge(ctx context.Context, id string) (FormView, error)
	OpenReset(ctx context.Context, id string) (FormView, error)
	CloseReset(ctx context.Context, id string) (FormView, error)
	SetResetFields(ctx context.Context, id string, fields map[string]string) (FormView, error)
	SubmitReset(ctx context.Context, id string) (SubmitResult, error)
	End(ctx context.Context, id string) error
}

type service struct {
	store  *session.Store
	cfg    Config
	logger *zap.Logger
}

func NewService(store *session.Store, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{store: store, cfg: cfg, logger: l}
}

func (s *service) StartRegistration(ctx context.Context) (FormView, error) {
	sess := newRegistrationSession(uuid.NewString(), s.cfg, s.logger)
	s.store.Put(sess)
	s.logger.Debug("registration form mounted", zap.String("session_id", sess.ID()))
	return sess.View(), nil
}

func (s *service) StartLogin(ctx context.Context) (FormView, error) {
	sess := newLoginSession(uuid.NewString(), s.cfg, s.logger)
	s.store.Put(sess)
	s.logger.Debug("login form mounted", zap.String("session_id", sess.ID()))
	return sess.View(), nil
}

func (s *service) lookup(id string) (formSession, error) {
	v, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, autherrors.ErrSessionNotFound
		}
		return nil, err
	}
	sess, ok := v.(formSession)
	if !ok {
		return nil, autherrors.ErrSessionNotFound
	}
	return sess, nil
}

func (s *service) login(id string) (*loginSession, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	ls, ok := sess.(*loginSession)
	if !ok {
		return nil, wrongKind(sess, KindLogin)
	}
	return ls, nil
}

func (s *service) Get(ctx context.Context, id string) (FormView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return FormView{}, err
	}
	return sess.View(), nil
}

// SetFields applies every field in one go. Names are checked up front so a
// bad name leaves the form untouched.
func (s *service) SetFields(ctx context.Context, id string, fields map[string]string) (FormView, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return FormView{}, err
	}
	if err := checkFields(sess.Kind(), fields); err != nil {
		return FormView{}, err
	}
	for name, value := range fields {
		if err := sess.SetField(name, value); err != nil {
			return FormView{}, err
		}
	}
	return sess.View(), nil
}

func (s *service) Submit(ctx context.Context, id string) (SubmitResult, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SubmitResult{}, err
	}
	invalid, err := sess.Submit()
	if err != nil {
		return SubmitResult{View: sess.View()}, err
	}
	if len(invalid) > 0 {
		s.logger.Debug("submission rejected",
			zap.String("session_id", id),
			zap.Strings("fields", invalid.Fields()),
		)
		return SubmitResult{Accepted: false, View: sess.View()}, nil
	}
	return SubmitResult{Accepted: true, View: sess.View()}, nil
}

func (s *service) Acknowledge(ctx context.Context, id string) (FormView, error) {
	ls, err := s.login(id)
	if err != nil {
		return FormView{}, err
	}
	if err := ls.Acknowledge(); err != nil {
		return FormView{}, err
	}
	return ls.View(), nil
}

func (s *service) OpenReset(ctx context.Context, id string) (FormView, error) {
	ls, err := s.login(id)
	if err != nil {
		return FormView{}, err
	}
	ls.reset.Open()
	return ls.View(), nil
}

func (s *service) CloseReset(ctx context.Context, id string) (FormView, error) {
	ls, err := s.login(id)
	if err != nil {
		return FormView{}, err
	}
	ls.reset.Dismiss()
	return ls.View(), nil
}

func (s *service) SetResetFields(ctx context.Context, id string, fields map[string]string) (FormView, error) {
	ls, err := s.login(id)
	if err != nil {
		return FormView{}, err
	}
	if !ls.reset.IsOpen() {
		return FormView{}, autherrors.ErrResetClosed
	}
	if err := checkNames(PasswordResetFields, fields); err != nil {
		return FormView{}, err
	}
	for name, value := range fields {
		if err := ls.reset.SetField(name, value); err != nil {
			return FormView{}, err
		}
	}
	return ls.View(), nil
}

func (s *service) SubmitReset(ctx context.Context, id string) (SubmitResult, error) {
	ls, err := s.login(id)
	if err != nil {
		return SubmitResult{}, err
	}
	invalid, err := ls.reset.Submit()
	if err != nil {
		return SubmitResult{View: ls.View()}, err
	}
	return SubmitResult{Accepted: len(invalid) == 0, View: ls.View()}, nil
}

// End unmounts the view and cancels whatever it still had scheduled.
func (s *service) End(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return autherrors.ErrSessionNotFound
		}
		return err
	}
	s.logger.Debug("form unmounted", zap.String("session_id", id))
	return nil
}

func checkFields(kind Kind, fields map[string]string) error {
	if kind == KindLogin {
		return checkNames(LoginFields, fields)
	}
	return checkNames(RegistrationFields, fields)
}

func checkNames(known []string, fields map[string]string) error {
	for name := range fields {
		if !slices.Contains(known, name) {
			return autherrors.ErrUnknownField
		}
	}
	return nil
}
