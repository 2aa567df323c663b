// Package session keeps the server-side state of mounted views in memory.
// A session that expires or is deleted is closed, which releases its timers.
package session

import (
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("session not found")

// Session is anything a store can own.
type Session interface {
	ID() string
	Close()
}

type Store struct {
	items  *gocache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.L()
	}
	cleanup := ttl / 2
	if cleanup < time.Second {
		cleanup = time.Second
	}

	s := &Store{
		items:  gocache.New(ttl, cleanup),
		ttl:    ttl,
		logger: logger.Named("session.store"),
	}
	s.items.OnEvicted(func(id string, v interface{}) {
		if sess, ok := v.(Session); ok {
			sess.Close()
		}
		s.logger.Debug("session released", zap.String("session_id", id))
	})
	return s
}

func (s *Store) Put(sess Session) {
	s.items.Set(sess.ID(), sess, gocache.DefaultExpiration)
}

// Get returns the session and pushes its expiry back by the store TTL.
// Replace only succeeds while the entry is still present, so a session
// deleted or evicted in between is never put back.
func (s *Store) Get(id string) (Session, error) {
	v, ok := s.items.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	sess := v.(Session)
	if err := s.items.Replace(id, sess, gocache.DefaultExpiration); err != nil {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete tears the session down.
func (s *Store) Delete(id string) error {
	if _, ok := s.items.Get(id); !ok {
		return ErrNotFound
	}
	s.items.Delete(id)
	return nil
}

func (s *Store) Len() int {
	return s.items.ItemCount()
}

// Close tears down every session. Flush would skip the eviction hook, so
// sessions are deleted one by one.
func (s *Store) Close() {
	for id := range s.items.Items() {
		s.items.Delete(id)
	}
}
