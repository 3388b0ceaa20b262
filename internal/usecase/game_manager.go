package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
	Update(ctx context.Context, id string, fn repository.UpdateFunc) error
}

// GameManager runs any number of independent games, each one stored as a session.
// Rounds and resets go through the store's atomic update, so managers sharing one store never lose a move.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo

	newID func() string
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
		newID:       uuid.NewString,
	}
}

// NewGame - creates a session with two players and an empty board.
func (that *GameManager) NewGame(ctx context.Context, nameX, nameO string) (*entity.Snapshot, error) {
	controller := tictactoe.NewGameController(entity.NewSession(that.newID()))
	if err := controller.InitializeGame(nameX, nameO); err != nil {
		return nil, fmt.Errorf("failed to initialize game: %w", err)
	}

	if err := that.sessionRepo.CreateOrUpdate(ctx, controller.Session()); err != nil {
		return nil, fmt.Errorf("failed to save new game: %w", err)
	}

	that.logger.Info("game created", "gameID", controller.Session().ID)

	return snapshotOf(controller), nil
}

// PlayRound - plays the current player's marker. A rejected round returns the unchanged game together with the error.
func (that *GameManager) PlayRound(ctx context.Context, gameID string, row, col int) (*entity.Snapshot, error) {
	log := that.logger.With("method", "PlayRound", "gameID", gameID)

	if gameID == "" {
		return nil, errEmptyGameID
	}

	var (
		controller *tictactoe.GameController
		player     entity.Player
		status     entity.Status
		rejected   error
	)

	err := that.sessionRepo.Update(ctx, gameID, func(session *entity.Session) error {
		controller = tictactoe.NewGameController(session)
		player, _ = controller.GetCurrentPlayer()

		status, rejected = controller.PlayRound(row, col)

		return rejected
	})

	if rejected != nil {
		log.Debug("round rejected", "row", row, "col", col, "error", rejected)
		return snapshotOf(controller), fmt.Errorf("failed to play round: %w", rejected)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Info("round played", "player", player.Name, "marker", player.Marker, "row", row, "col", col)

	switch status.State {
	case entity.StateWin:
		log.Info("game won", "player", player.Name, "marker", status.Winner)
	case entity.StateTie:
		log.Info("game tied")
	}

	return snapshotOf(controller), nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Snapshot, error) {
	controller, err := that.load(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return snapshotOf(controller), nil
}

// ResetGame - clears the board and sets the players up again, empty names keep the previous players.
func (that *GameManager) ResetGame(ctx context.Context, gameID, nameX, nameO string) (*entity.Snapshot, error) {
	if gameID == "" {
		return nil, errEmptyGameID
	}

	var controller *tictactoe.GameController

	err := that.sessionRepo.Update(ctx, gameID, func(session *entity.Session) error {
		controller = tictactoe.NewGameController(session)

		x, o := nameX, nameO
		if players := controller.Players(); len(players) == 2 {
			if x == "" {
				x = players[0].Name
			}

			if o == "" {
				o = players[1].Name
			}
		}

		if err := controller.InitializeGame(x, o); err != nil {
			return fmt.Errorf("failed to reset game: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game reset", "gameID", gameID)

	return snapshotOf(controller), nil
}

func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.sessionRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}

var errEmptyGameID = fmt.Errorf("%w: game id is empty", apperror.ErrNotFound)

func (that *GameManager) load(ctx context.Context, gameID string) (*tictactoe.GameController, error) {
	if gameID == "" {
		return nil, errEmptyGameID
	}

	session, err := that.sessionRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return tictactoe.NewGameController(session), nil
}

func snapshotOf(controller *tictactoe.GameController) *entity.Snapshot {
	snapshot := &entity.Snapshot{
		ID:      controller.Session().ID,
		Board:   controller.GetBoard(),
		Status:  controller.GetGameStatus(),
		Players: controller.Players(),
	}

	if player, err := controller.GetCurrentPlayer(); err == nil {
		snapshot.CurrentPlayer = &player
	}

	return snapshot
}
