package svc

import (
	"errors"
	"sync"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/session"
)

var (
	ErrSessionNotFound = errors.New("game not found")
	ErrTooManySessions = errors.New("too many games")
)

// Registry holds the running sessions in memory.
type Registry struct {
	mu       sync.RWMutex
	sessions map[message.GameUid]*session.Session
	limit    int
	reserved int
}

func NewRegistry(limit int) *Registry {
	return &Registry{sessions: make(map[message.GameUid]*session.Session), limit: limit}
}

func (r *Registry) Add(s *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.full() {
		return ErrTooManySessions
	}
	r.sessions[s.ID()] = s
	return nil
}

// Open reserves a slot and only then calls create, so a refused game never
// starts.
func (r *Registry) Open(create func() (*session.Session, error)) (*session.Session, error) {
	r.mu.Lock()
	if r.full() {
		r.mu.Unlock()
		return nil, ErrTooManySessions
	}
	r.reserved++
	r.mu.Unlock()

	s, err := create()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.reserved--
	if err != nil {
		return nil, err
	}
	r.sessions[s.ID()] = s
	return s, nil
}

func (r *Registry) full() bool {
	return r.limit > 0 && len(r.sessions)+r.reserved >= r.limit
}

func (r *Registry) Get(id message.GameUid) (*session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove closes and forgets the session.
func (r *Registry) Remove(id message.GameUid) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	return s.Close()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[message.GameUid]*session.Session)
	r.mu.Unlock()

	for _, s := range sessions {
		_ = s.Close()
	}
}
