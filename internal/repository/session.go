package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// UpdateFunc changes the loaded session in place. A returned error aborts the update and nothing is saved.
type UpdateFunc func(session *entity.Session) error

// SessionRepository keeps live sessions between rounds. Unknown IDs give apperror.ErrNotFound.
type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error

	// Update - loads, changes and saves a session as one step, concurrent writers never overwrite each other.
	Update(ctx context.Context, id string, fn UpdateFunc) error
}
