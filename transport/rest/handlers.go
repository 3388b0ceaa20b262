package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type playersRequest struct {
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
}

type roundRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type gameResponse struct {
	Game *entity.Snapshot `json:"game"`
}

type errorResponse struct {
	Error string           `json:"error"`
	Code  string           `json:"code"`
	Game  *entity.Snapshot `json:"game,omitempty"`
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req playersRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err), nil)
		return
	}

	if req.PlayerX == "" {
		req.PlayerX = that.defaults.XName
	}

	if req.PlayerO == "" {
		req.PlayerO = that.defaults.OName
	}

	snapshot, err := that.games.NewGame(r.Context(), req.PlayerX, req.PlayerO)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusCreated, gameResponse{Game: snapshot})
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.games.GetGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, gameResponse{Game: snapshot})
}

func (that *Server) playRound(w http.ResponseWriter, r *http.Request) {
	var req roundRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, fmt.Errorf("%w: %w", apperror.ErrInvalidArity, err), nil)
		return
	}

	if req.Row == nil || req.Col == nil {
		that.writeError(w, apperror.ErrInvalidArity, nil)
		return
	}

	snapshot, err := that.games.PlayRound(r.Context(), mux.Vars(r)["id"], *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, err, snapshot)
		return
	}

	that.writeJSON(w, http.StatusOK, gameResponse{Game: snapshot})
}

func (that *Server) resetGame(w http.ResponseWriter, r *http.Request) {
	var req playersRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err), nil)
		return
	}

	snapshot, err := that.games.ResetGame(r.Context(), mux.Vars(r)["id"], req.PlayerX, req.PlayerO)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	that.writeJSON(w, http.StatusOK, gameResponse{Game: snapshot})
}

func (that *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), mux.Vars(r)["id"]); err != nil {
		that.writeError(w, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

var errBadRequest = errors.New("malformed request body")

// decodeBody - an empty body leaves target untouched.
func decodeBody(r *http.Request, target any) error {
	err := json.NewDecoder(r.Body).Decode(target)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, apperror.ErrInvalidArity),
		errors.Is(err, apperror.ErrInvalidCoordinate),
		errors.Is(err, apperror.ErrInvalidMarker):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrInvalidState),
		errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeError(w http.ResponseWriter, err error, snapshot *entity.Snapshot) {
	status := statusCode(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		that.writeJSON(w, status, errorResponse{Error: "Internal Server Error", Code: apperror.Code(err)})
		return
	}

	code := apperror.Code(err)
	if errors.Is(err, errBadRequest) {
		code = "bad_request"
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error(), Code: code, Game: snapshot})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
