package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"syscall"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/server"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrBadPayload    = errors.New("malformed payload")
)

type gameManager interface {
	NewGame(ctx context.Context, nameX, nameO string) (*entity.Snapshot, error)
	PlayRound(ctx context.Context, gameID string, row, col int) (*entity.Snapshot, error)
	GetGame(ctx context.Context, gameID string) (*entity.Snapshot, error)
	ResetGame(ctx context.Context, gameID, nameX, nameO string) (*entity.Snapshot, error)
}

type handlerFunc func(ctx context.Context, message *Message) (*entity.Snapshot, error)

type Server struct {
	logger   *slog.Logger
	games    gameManager
	defaults config.Players

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameManager, defaults config.Players) *Server {
	wsServer := &Server{
		logger:   logger.With("component", "websocket"),
		games:    games,
		defaults: defaults,

		handlers: make(map[string]handlerFunc),
	}

	wsServer.handlers[actionNewGame] = wsServer.handleNewGame
	wsServer.handlers[actionTurn] = wsServer.handleGameTurn
	wsServer.handlers[actionGameState] = wsServer.handleGameState
	wsServer.handlers[actionReset] = wsServer.handleReset

	return wsServer
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWebSocket)

	return mux
}

// Start - starts WebSocket server, it returns once ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	return server.Serve(ctx, server.New(ctx, port, that.Handler()))
}

// serveWebSocket - upgrades the connection and processes messages until the client leaves.
func (that *Server) serveWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWebSocket")

	conn, err := websocket.Accept(writer, req, nil)
	if err != nil {
		log.Error("failed to accept websocket connection", "error", err)
		return
	}

	defer conn.CloseNow()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	err = that.handleMessages(req.Context(), conn)

	switch status := websocket.CloseStatus(err); {
	case status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway:
		log.Info("WebSocket connection closed")
		_ = conn.Close(websocket.StatusNormalClosure, "")
	case errors.Is(err, context.Canceled):
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
	case clientGone(err):
		log.Info("WebSocket client disconnected", "error", err)
	default:
		log.Error("error handling messages", "error", err)
		_ = conn.Close(websocket.StatusInternalError, "")
	}
}

// clientGone - reports a connection dropped by the client without a close frame.
func clientGone(err error) bool {
	return websocket.CloseStatus(err) == websocket.StatusAbnormalClosure ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			err = fmt.Errorf("%w: %w", apperror.ErrInvalidArity, err)
			if err = that.sendError(ctx, conn, err, nil); err != nil {
				return err
			}
			continue
		}

		if err = that.processMessage(ctx, conn, &message); err != nil {
			return err
		}
	}
}

// processMessage - runs the handler of the action and writes the reply, only write failures are returned.
func (that *Server) processMessage(ctx context.Context, conn *websocket.Conn, message *Message) error {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return that.sendError(ctx, conn, fmt.Errorf("%w: %s", ErrUnknownAction, message.Action), nil)
	}

	snapshot, err := handler(ctx, message)
	if err != nil {
		that.logger.Debug("action rejected", "action", message.Action, "error", err)
		return that.sendError(ctx, conn, err, snapshot)
	}

	return that.sendMessage(ctx, conn, message.Action, ResponsePayload{Game: snapshot})
}

func (that *Server) sendMessage(ctx context.Context, conn *websocket.Conn, action string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = wsjson.Write(ctx, conn, Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(ctx context.Context, conn *websocket.Conn, err error, snapshot *entity.Snapshot) error {
	code := apperror.Code(err)
	switch {
	case errors.Is(err, ErrUnknownAction):
		code = "unknown_action"
	case errors.Is(err, ErrBadPayload):
		code = "bad_request"
	}

	return that.sendMessage(ctx, conn, actionError, ErrorPayload{
		Error: err.Error(),
		Code:  code,
		Game:  snapshot,
	})
}
