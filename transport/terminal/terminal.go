package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	commandQuit  = "quit"
	commandReset = "reset"
)

type gameManager interface {
	NewGame(ctx context.Context, nameX, nameO string) (*entity.Snapshot, error)
	PlayRound(ctx context.Context, gameID string, row, col int) (*entity.Snapshot, error)
	ResetGame(ctx context.Context, gameID, nameX, nameO string) (*entity.Snapshot, error)
	DeleteGame(ctx context.Context, gameID string) error
}

// Terminal plays one game on a line based console: it reads "row col" moves and prints the board after each of them.
type Terminal struct {
	logger   *slog.Logger
	games    gameManager
	defaults config.Players

	in      io.Reader
	out     io.Writer
	lines   chan string
	readErr error
}

func New(logger *slog.Logger, games gameManager, defaults config.Players, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		logger:   logger.With("component", "terminal"),
		games:    games,
		defaults: defaults,
		in:       in,
		out:      out,
	}
}

// Run - plays until the input ends, the user quits or ctx is canceled.
func (that *Terminal) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.lines = make(chan string)
	go that.readLines(ctx)

	nameX, ok := that.ask(ctx, fmt.Sprintf("Player X name [%s]: ", that.defaults.XName))
	if !ok {
		return that.inputErr(ctx)
	}

	nameO, ok := that.ask(ctx, fmt.Sprintf("Player O name [%s]: ", that.defaults.OName))
	if !ok {
		return that.inputErr(ctx)
	}

	if nameX == "" {
		nameX = that.defaults.XName
	}

	if nameO == "" {
		nameO = that.defaults.OName
	}

	game, err := that.games.NewGame(ctx, nameX, nameO)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	gameID := game.ID
	defer func() {
		if err := that.games.DeleteGame(context.WithoutCancel(ctx), gameID); err != nil {
			that.logger.Error("failed to delete game", "gameID", gameID, "error", err)
		}
	}()

	that.render(game)

	for {
		line, ok := that.ask(ctx, "> ")
		if !ok {
			return that.inputErr(ctx)
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case commandQuit, "q":
			return nil
		case commandReset:
			game, err = that.games.ResetGame(ctx, gameID, "", "")
			if err != nil {
				return fmt.Errorf("failed to reset game: %w", err)
			}
			that.render(game)
			continue
		}

		row, col, err := parseMove(line)
		if err != nil {
			that.printf("%s\n", describe(err))
			continue
		}

		next, err := that.games.PlayRound(ctx, gameID, row, col)
		if err != nil {
			if next == nil {
				return fmt.Errorf("failed to play round: %w", err)
			}
			that.printf("%s\n", describe(err))
			continue
		}

		game = next
		that.render(game)
	}
}

// readLines - feeds input lines to the game loop, the channel is closed at the end of input.
func (that *Terminal) readLines(ctx context.Context) {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		select {
		case that.lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	that.readErr = scanner.Err()
}

func (that *Terminal) ask(ctx context.Context, prompt string) (string, bool) {
	that.printf("%s", prompt)

	select {
	case line, ok := <-that.lines:
		return strings.TrimSpace(line), ok
	case <-ctx.Done():
		return "", false
	}
}

// inputErr - reading stopped because of a canceled context or the end of input, neither is an error.
func (that *Terminal) inputErr(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}

	// the reader has finished once the channel is drained
	for range that.lines {
	}

	if that.readErr != nil {
		return fmt.Errorf("failed to read input: %w", that.readErr)
	}

	return nil
}

func (that *Terminal) render(game *entity.Snapshot) {
	that.printf("%s", Render(game.Board))

	switch game.Status.State {
	case entity.StateWin:
		that.printf("%s wins! Type %q to play again or %q to leave.\n", game.CurrentPlayer.Name, commandReset, commandQuit)
	case entity.StateTie:
		that.printf("It's a tie! Type %q to play again or %q to leave.\n", commandReset, commandQuit)
	default:
		if game.CurrentPlayer != nil {
			that.printf("%s (%s) is up next.\n", game.CurrentPlayer.Name, game.CurrentPlayer.Marker)
		}
	}
}

func (that *Terminal) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// Render - draws the grid with row and column indexes, empty cells are shown as dots.
func Render(grid entity.Grid) string {
	var builder strings.Builder

	builder.WriteString("  0 1 2\n")
	for row := range grid {
		builder.WriteString(strconv.Itoa(row))
		for _, cell := range grid[row] {
			builder.WriteByte(' ')
			if cell == entity.EmptyCell {
				builder.WriteByte('.')
			} else {
				builder.WriteString(string(cell))
			}
		}
		builder.WriteByte('\n')
	}

	return builder.String()
}

func parseMove(line string) (int, int, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d values", apperror.ErrInvalidArity, len(fields))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", apperror.ErrInvalidArity, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", apperror.ErrInvalidArity, fields[1])
	}

	return row, col, nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidArity):
		return "Please provide a row number and a column number."
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return "Row and column must be between 0 and 2."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, apperror.ErrGameFinished):
		return fmt.Sprintf("The game is over. Type %q or %q.", commandReset, commandQuit)
	default:
		return err.Error()
	}
}
