package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	sessionKeyPrefix = "session:"

	maxUpdateAttempts = 50
)

type redisSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository - every write refreshes the key expiration to ttl, zero means no expiration.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &redisSession{
		client: client,
		ttl:    ttl,
	}
}

func (that *redisSession) CreateOrUpdate(ctx context.Context, session *entity.Session) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	err = that.client.Set(ctx, sessionKeyPrefix+session.ID, sessionJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *redisSession) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	response, err := that.client.Get(ctx, sessionKeyPrefix+id).Result()

	return decodeSession(id, response, err)
}

// Update - optimistic transaction on the session key, retried while another writer wins the race.
func (that *redisSession) Update(ctx context.Context, id string, fn UpdateFunc) error {
	key := sessionKeyPrefix + id

	txFunc := func(tx *redis.Tx) error {
		response, err := tx.Get(ctx, key).Result()

		session, err := decodeSession(id, response, err)
		if err != nil {
			return err
		}

		if err = fn(session); err != nil {
			return err
		}

		sessionJSON, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("could not marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, sessionJSON, that.ttl)
			return nil
		})

		return err
	}

	for range maxUpdateAttempts {
		err := that.client.Watch(ctx, txFunc, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return err
	}

	return fmt.Errorf("session %s: %w", id, apperror.ErrConflict)
}

func (that *redisSession) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session by id: %w", err)
	}

	if deleted == 0 {
		return fmt.Errorf("session %s: %w", id, apperror.ErrNotFound)
	}

	return nil
}

func decodeSession(id, response string, err error) (*entity.Session, error) {
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session %s: %w", id, apperror.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	var session entity.Session
	if err = json.Unmarshal([]byte(response), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}
