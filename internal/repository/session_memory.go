package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type memorySession struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
}

// NewMemorySessionRepository - stores sessions in process memory, they are lost on exit.
func NewMemorySessionRepository() SessionRepository {
	return &memorySession{
		sessions: make(map[string]*entity.Session),
	}
}

func (that *memorySession) CreateOrUpdate(_ context.Context, session *entity.Session) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[session.ID] = session.Clone()

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.Session, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, apperror.ErrNotFound)
	}

	return session.Clone(), nil
}

func (that *memorySession) Update(_ context.Context, id string, fn UpdateFunc) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored, ok := that.sessions[id]
	if !ok {
		return fmt.Errorf("session %s: %w", id, apperror.ErrNotFound)
	}

	session := stored.Clone()
	if err := fn(session); err != nil {
		return err
	}

	that.sessions[id] = session.Clone()

	return nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, apperror.ErrNotFound)
	}

	delete(that.sessions, id)

	return nil
}
