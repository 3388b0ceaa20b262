package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

func newTestHandler() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	games := usecase.NewGameManager(logger, repository.NewMemorySessionRepository())

	return New(logger, games, config.Players{XName: "Player1", OName: "Player2"}).Handler()
}

func do(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, path, strings.NewReader(body)))

	return recorder
}

func decodeGame(t *testing.T, recorder *httptest.ResponseRecorder) *entity.Snapshot {
	t.Helper()

	var response gameResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.Game)

	return response.Game
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) errorResponse {
	t.Helper()

	var response errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	return response
}

func TestHandlers_Ping(t *testing.T) {
	recorder := do(t, newTestHandler(), http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestHandlers_TieGame(t *testing.T) {
	handler := newTestHandler()

	// Given: a new game with default names
	created := do(t, handler, http.MethodPost, "/games", "")
	require.Equal(t, http.StatusCreated, created.Code)
	game := decodeGame(t, created)
	assert.Equal(t, "Player1", game.CurrentPlayer.Name)

	// When: nine moves fill the board without a line
	moves := []string{
		`{"row":0,"col":0}`, `{"row":0,"col":1}`, `{"row":0,"col":2}`,
		`{"row":1,"col":1}`, `{"row":1,"col":0}`, `{"row":1,"col":2}`,
		`{"row":2,"col":1}`, `{"row":2,"col":0}`, `{"row":2,"col":2}`,
	}
	for _, move := range moves {
		recorder := do(t, handler, http.MethodPost, "/games/"+game.ID+"/rounds", move)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	}

	// Then: the game is a tie
	state := decodeGame(t, do(t, handler, http.MethodGet, "/games/"+game.ID, ""))
	assert.Equal(t, entity.Tie(), state.Status)
}

func TestHandlers_PlayRoundErrors(t *testing.T) {
	handler := newTestHandler()
	game := decodeGame(t, do(t, handler, http.MethodPost, "/games", `{"player_x":"Ann","player_o":"Bob"}`))
	path := "/games/" + game.ID + "/rounds"

	require.Equal(t, http.StatusOK, do(t, handler, http.MethodPost, path, `{"row":1,"col":1}`).Code)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"Occupied cell", path, `{"row":1,"col":1}`, http.StatusConflict, "cell_occupied"},
		{"Out of range", path, `{"row":0,"col":3}`, http.StatusBadRequest, "invalid_coordinate"},
		{"Missing row", path, `{"col":0}`, http.StatusBadRequest, "invalid_arity"},
		{"Not an integer", path, `{"row":"0","col":0}`, http.StatusBadRequest, "invalid_arity"},
		{"Empty body", path, ``, http.StatusBadRequest, "invalid_arity"},
		{"Unknown game", "/games/missing/rounds", `{"row":0,"col":0}`, http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := do(t, handler, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, tt.code, decodeError(t, recorder).Code)
		})
	}

	// Then: after all rejected rounds O is still to move
	state := decodeGame(t, do(t, handler, http.MethodGet, "/games/"+game.ID, ""))
	assert.Equal(t, "Bob", state.CurrentPlayer.Name)
}

func TestHandlers_ResetAndDelete(t *testing.T) {
	handler := newTestHandler()
	game := decodeGame(t, do(t, handler, http.MethodPost, "/games", `{"player_x":"Ann","player_o":"Bob"}`))
	require.Equal(t, http.StatusOK, do(t, handler, http.MethodPost, "/games/"+game.ID+"/rounds", `{"row":2,"col":2}`).Code)

	reset := decodeGame(t, do(t, handler, http.MethodPost, "/games/"+game.ID+"/reset", `{"player_o":"Cid"}`))
	assert.Equal(t, entity.Grid{}, reset.Board)
	assert.Equal(t, "Ann", reset.Players[0].Name)
	assert.Equal(t, "Cid", reset.Players[1].Name)

	assert.Equal(t, http.StatusNoContent, do(t, handler, http.MethodDelete, "/games/"+game.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, handler, http.MethodGet, "/games/"+game.ID, "").Code)
}

func TestHandlers_FinishedGame(t *testing.T) {
	handler := newTestHandler()
	game := decodeGame(t, do(t, handler, http.MethodPost, "/games", ""))
	path := "/games/" + game.ID + "/rounds"

	for _, move := range []string{`{"row":0,"col":0}`, `{"row":1,"col":1}`, `{"row":0,"col":1}`, `{"row":2,"col":2}`, `{"row":0,"col":2}`} {
		require.Equal(t, http.StatusOK, do(t, handler, http.MethodPost, path, move).Code)
	}

	recorder := do(t, handler, http.MethodPost, path, `{"row":2,"col":0}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	failure := decodeError(t, recorder)
	assert.Equal(t, "game_finished", failure.Code)
	require.NotNil(t, failure.Game)
	assert.Equal(t, entity.Win(entity.MarkerX), failure.Game.Status)
}
