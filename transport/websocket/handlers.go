package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message) (*entity.Snapshot, error) {
	var payload NewGamePayload

	if err := decodePayload(msg, &payload); err != nil {
		return nil, fmt.Errorf("%w: new game: %w", ErrBadPayload, err)
	}

	nameX, nameO := payload.PlayerX, payload.PlayerO
	if nameX == "" {
		nameX = that.defaults.XName
	}

	if nameO == "" {
		nameO = that.defaults.OName
	}

	return that.games.NewGame(ctx, nameX, nameO)
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message) (*entity.Snapshot, error) {
	var payload TurnPayload

	if err := decodePayload(msg, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidArity, err)
	}

	if payload.Row == nil || payload.Col == nil {
		return nil, apperror.ErrInvalidArity
	}

	return that.games.PlayRound(ctx, payload.GameID, *payload.Row, *payload.Col)
}

func (that *Server) handleGameState(ctx context.Context, msg *Message) (*entity.Snapshot, error) {
	var payload GamePayload

	if err := decodePayload(msg, &payload); err != nil {
		return nil, fmt.Errorf("%w: game: %w", ErrBadPayload, err)
	}

	return that.games.GetGame(ctx, payload.GameID)
}

func (that *Server) handleReset(ctx context.Context, msg *Message) (*entity.Snapshot, error) {
	var payload ResetPayload

	if err := decodePayload(msg, &payload); err != nil {
		return nil, fmt.Errorf("%w: reset: %w", ErrBadPayload, err)
	}

	return that.games.ResetGame(ctx, payload.GameID, payload.PlayerX, payload.PlayerO)
}

func decodePayload(msg *Message, target any) error {
	if len(msg.Payload) == 0 {
		return nil
	}

	return json.Unmarshal(msg.Payload, target)
}
