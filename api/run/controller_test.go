package runapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/maze-runner/api/identity"
	dmn "github.com/beka-birhanu/maze-runner/domain"
	"github.com/beka-birhanu/maze-runner/game"
	"github.com/beka-birhanu/maze-runner/service"
	"github.com/beka-birhanu/maze-runner/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRuns struct {
	run        *dmn.Run
	err        error
	gotLevel   int
	gotInputs  []game.Input
	gotLimit   int
	difficulty string
	history    []*dmn.Run
}

func (f *fakeRuns) Start(_ context.Context, _ uuid.UUID, d string) (*dmn.Run, game.Layout, error) {
	f.difficulty = d
	return f.run, game.Layout{LevelConfig: game.ConfigForLevel(f.run.Level)}, f.err
}

func (f *fakeRuns) Run(context.Context, uuid.UUID, uuid.UUID) (*dmn.Run, error) {
	return f.run, f.err
}

func (f *fakeRuns) Layout(context.Context, uuid.UUID, uuid.UUID) (game.Layout, error) {
	return game.Layout{LevelConfig: game.ConfigForLevel(f.run.Level)}, f.err
}

func (f *fakeRuns) SubmitLevel(_ context.Context, _, _ uuid.UUID, level int, trace []game.Input) (*dmn.Run, error) {
	f.gotLevel, f.gotInputs = level, trace
	return f.run, f.err
}

func (f *fakeRuns) Abandon(context.Context, uuid.UUID, uuid.UUID) (*dmn.Run, error) {
	return f.run, f.err
}

func (f *fakeRuns) Leaderboard(_ context.Context, limit int) ([]i.LeaderboardEntry, error) {
	f.gotLimit = limit
	return []i.LeaderboardEntry{{Rank: 1, PlayerID: f.run.PlayerID, Username: "runner", Score: 700}}, f.err
}

func (f *fakeRuns) History(_ context.Context, _ uuid.UUID, limit int) ([]*dmn.Run, error) {
	f.gotLimit = limit
	return f.history, f.err
}

func (f *fakeRuns) Standing(_ context.Context, playerID uuid.UUID) (i.LeaderboardEntry, error) {
	if f.err != nil {
		return i.LeaderboardEntry{}, f.err
	}
	return i.LeaderboardEntry{Rank: 4, PlayerID: playerID, Username: "runner", Score: 350}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Warning(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{})   {}

func newTestServer(t *testing.T, runs *fakeRuns, player uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rc, err := NewRunController(runs, nopLogger{})
	require.NoError(t, err)

	r := gin.New()
	public := r.Group("/v1")
	rc.RegisterPublic(public)

	protected := r.Group("/v1")
	protected.Use(func(c *gin.Context) {
		c.Set(identity.ContextUserClaims, map[string]interface{}{"userID": player.String()})
	})
	rc.RegisterProtected(protected)
	return r
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRunController(t *testing.T) {
	player := uuid.New()
	run := dmn.NewRun(uuid.New(), player, 3, dmn.Medium)
	path := "/v1/runs/" + run.ID.String()

	t.Run("start", func(t *testing.T) {
		runs := &fakeRuns{run: run}
		w := do(newTestServer(t, runs, player), http.MethodPost, "/v1/runs", StartRequest{Difficulty: "medium"})

		require.Equal(t, http.StatusCreated, w.Code)
		var resp StartResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, run.ID.String(), resp.Run.ID)
		assert.Equal(t, 4, resp.Layout.Level)
		assert.Equal(t, "medium", runs.difficulty)
	})

	t.Run("start without body", func(t *testing.T) {
		runs := &fakeRuns{run: run}
		w := do(newTestServer(t, runs, player), http.MethodPost, "/v1/runs", nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, runs.difficulty)
	})

	t.Run("submit", func(t *testing.T) {
		runs := &fakeRuns{run: run}
		body := SubmitRequest{Level: 4, Inputs: []game.Input{{X: 1, Ticks: 8}, {Y: -1, Ticks: 16}}}
		w := do(newTestServer(t, runs, player), http.MethodPost, path+"/levels", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 4, runs.gotLevel)
		assert.Equal(t, body.Inputs, runs.gotInputs)
	})

	t.Run("submit without level", func(t *testing.T) {
		runs := &fakeRuns{run: run}
		w := do(newTestServer(t, runs, player), http.MethodPost, path+"/levels", gin.H{"inputs": []game.Input{}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failed submission returns the lost run", func(t *testing.T) {
		lost := *run
		lost.Status = dmn.RunLost
		runs := &fakeRuns{run: &lost, err: service.ErrLevelNotCompleted}
		w := do(newTestServer(t, runs, player), http.MethodPost, path+"/levels", SubmitRequest{Level: 4})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"lost"`)
	})

	t.Run("bad run id", func(t *testing.T) {
		w := do(newTestServer(t, &fakeRuns{run: run}, player), http.MethodGet, "/v1/runs/nope", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("leaderboard is public", func(t *testing.T) {
		runs := &fakeRuns{run: run}
		w := do(newTestServer(t, runs, player), http.MethodGet, "/v1/leaderboard?limit=5", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp []LeaderboardEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "runner", resp[0].Username)
		assert.Equal(t, 5, runs.gotLimit)

		w = do(newTestServer(t, runs, player), http.MethodGet, "/v1/leaderboard?limit=x", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("history", func(t *testing.T) {
		older := dmn.NewRun(uuid.New(), player, 9, dmn.Hard)
		runs := &fakeRuns{run: run, history: []*dmn.Run{run, older}}
		w := do(newTestServer(t, runs, player), http.MethodGet, "/v1/runs?limit=2", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp []RunResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, run.ID.String(), resp[0].ID)
		assert.Equal(t, "hard", resp[1].Difficulty)
		assert.Equal(t, 2, runs.gotLimit)
	})

	t.Run("own standing", func(t *testing.T) {
		w := do(newTestServer(t, &fakeRuns{run: run}, player), http.MethodGet, "/v1/leaderboard/me", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp LeaderboardEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.Rank)
		assert.Equal(t, player.String(), resp.PlayerID)

		w = do(newTestServer(t, &fakeRuns{run: run, err: dmn.ErrNotRanked}, player), http.MethodGet, "/v1/leaderboard/me", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestErrorMapping(t *testing.T) {
	player := uuid.New()
	run := dmn.NewRun(uuid.New(), player, 3, dmn.Easy)
	path := "/v1/runs/" + run.ID.String()

	tests := []struct {
		err    error
		status int
	}{
		{err: dmn.ErrRunNotFound, status: http.StatusNotFound},
		{err: service.ErrNotRunOwner, status: http.StatusForbidden},
		{err: service.ErrRunFinished, status: http.StatusConflict},
		{err: service.ErrLevelMismatch, status: http.StatusConflict},
		{err: dmn.ErrInvalidDifficulty, status: http.StatusBadRequest},
		{err: errors.New("mongo down"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := do(newTestServer(t, &fakeRuns{run: run, err: tt.err}, player), http.MethodPost, path+"/abandon", nil)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	t.Run("internal errors are not leaked", func(t *testing.T) {
		w := do(newTestServer(t, &fakeRuns{run: run, err: errors.New("mongo down")}, player), http.MethodGet, path+"/layout", nil)
		assert.NotContains(t, w.Body.String(), "mongo")
	})
}
