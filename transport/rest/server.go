package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/server"
	"github.com/rocketscienceinc/tictactoe/pkg/handlers"
)

type gameManager interface {
	NewGame(ctx context.Context, nameX, nameO string) (*entity.Snapshot, error)
	PlayRound(ctx context.Context, gameID string, row, col int) (*entity.Snapshot, error)
	GetGame(ctx context.Context, gameID string) (*entity.Snapshot, error)
	ResetGame(ctx context.Context, gameID, nameX, nameO string) (*entity.Snapshot, error)
	DeleteGame(ctx context.Context, gameID string) error
}

type Server struct {
	logger   *slog.Logger
	games    gameManager
	defaults config.Players
}

func New(logger *slog.Logger, games gameManager, defaults config.Players) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		games:    games,
		defaults: defaults,
	}
}

func (that *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/ping", handlers.PingHandler).Methods(http.MethodGet)

	router.HandleFunc("/games", that.createGame).Methods(http.MethodPost)
	router.HandleFunc("/games/{id}", that.getGame).Methods(http.MethodGet)
	router.HandleFunc("/games/{id}", that.deleteGame).Methods(http.MethodDelete)
	router.HandleFunc("/games/{id}/rounds", that.playRound).Methods(http.MethodPost)
	router.HandleFunc("/games/{id}/reset", that.resetGame).Methods(http.MethodPost)

	return router
}

// Start - starts HTTP server, it returns once ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	return server.Serve(ctx, server.New(ctx, port, that.Handler()))
}
