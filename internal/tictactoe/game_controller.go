package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// GameController drives the turn flow of a single session. It is not safe for concurrent use.
type GameController struct {
	session *entity.Session
}

// NewGameController - returns a controller operating on the given session, a nil session starts a new one.
func NewGameController(session *entity.Session) *GameController {
	if session == nil {
		session = entity.NewSession("")
	}

	if session.Turn != entity.FirstPlayer && session.Turn != entity.SecondPlayer {
		session.Turn = entity.FirstPlayer
	}

	return &GameController{session: session}
}

func (that *GameController) Session() *entity.Session {
	return that.session
}

// SetupPlayers - creates the two players, X always moves first.
func (that *GameController) SetupPlayers(nameX, nameO string) error {
	if that.session.HasPlayers() {
		return apperror.ErrPlayersAlreadySet
	}

	if nameX == "" {
		nameX = entity.DefaultNameX
	}

	if nameO == "" {
		nameO = entity.DefaultNameO
	}

	that.session.Players = []entity.Player{
		entity.NewPlayer(nameX, entity.MarkerX),
		entity.NewPlayer(nameO, entity.MarkerO),
	}
	that.session.Turn = entity.FirstPlayer
	that.touch()

	return nil
}

// InitializeGame - clears the session and sets up a fresh pair of players.
func (that *GameController) InitializeGame(nameX, nameO string) error {
	that.Reset()

	return that.SetupPlayers(nameX, nameO)
}

// PlayRound - places the current player's marker and returns the resulting status.
// The turn passes to the other player only if the game is still in progress.
func (that *GameController) PlayRound(row, col int) (entity.Status, error) {
	if !that.session.HasPlayers() {
		return entity.InProgress(), apperror.ErrPlayersNotSet
	}

	status := that.GetGameStatus()
	if status.IsTerminal() {
		return status, fmt.Errorf("%w: %s", apperror.ErrGameFinished, status)
	}

	player := that.session.Players[that.session.Turn]
	if err := that.session.Board.Place(row, col, player.Marker); err != nil {
		return status, fmt.Errorf("invalid turn: %w", err)
	}

	that.touch()

	status = that.GetGameStatus()
	if !status.IsTerminal() {
		that.session.Turn = 1 - that.session.Turn
	}

	return status, nil
}

// GetCurrentPlayer - once the game is over it returns the player whose move ended it.
func (that *GameController) GetCurrentPlayer() (entity.Player, error) {
	if !that.session.HasPlayers() {
		return entity.Player{}, apperror.ErrPlayersNotSet
	}

	return that.session.Players[that.session.Turn], nil
}

func (that *GameController) GetGameStatus() entity.Status {
	return entity.DetermineStatus(that.session.Board.GetBoard())
}

func (that *GameController) GetBoard() entity.Grid {
	return that.session.Board.GetBoard()
}

func (that *GameController) Players() []entity.Player {
	players := make([]entity.Player, len(that.session.Players))
	copy(players, that.session.Players)
	return players
}

// Reset - clears the board and the players, the next game starts with the first player.
func (that *GameController) Reset() {
	that.session.Board.Reset()
	that.session.Players = nil
	that.session.Turn = entity.FirstPlayer
	that.touch()
}

func (that *GameController) touch() {
	that.session.UpdatedAt = time.Now()
}
