package runapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/maze-runner/api/identity"
	dmn "github.com/beka-birhanu/maze-runner/domain"
	"github.com/beka-birhanu/maze-runner/game"
	"github.com/beka-birhanu/maze-runner/service"
	"github.com/beka-birhanu/maze-runner/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RunController serves the run endpoints.
type RunController struct {
	runs   i.RunManager
	logger i.Logger
}

// NewRunController creates a RunController.
func NewRunController(rm i.RunManager, logger i.Logger) (*RunController, error) {
	if rm == nil || logger == nil {
		return nil, errors.New("run controller: nil dependency")
	}
	return &RunController{runs: rm, logger: logger}, nil
}

// RegisterPublic registers public routes.
func (rc *RunController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", rc.leaderboard)
}

// RegisterProtected registers protected routes.
func (rc *RunController) RegisterProtected(route *gin.RouterGroup) {
	route.GET("/leaderboard/me", rc.standing)

	runs := route.Group("/runs")
	{
		runs.GET("", rc.history)
		runs.POST("", rc.start)
		runs.GET("/:ID", rc.get)
		runs.GET("/:ID/layout", rc.layout)
		runs.POST("/:ID/levels", rc.submit)
		runs.POST("/:ID/abandon", rc.abandon)
	}
}

func (rc *RunController) start(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request StartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, layout, err := rc.runs.Start(ctx, playerID, request.Difficulty)
	if err != nil {
		rc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, StartResponse{Run: toRunResponse(run), Layout: layout})
}

func (rc *RunController) history(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}
	limit, ok := queryLimit(ctx)
	if !ok {
		return
	}

	runs, err := rc.runs.History(ctx, playerID, limit)
	if err != nil {
		rc.fail(ctx, err)
		return
	}
	response := make([]RunResponse, 0, len(runs))
	for _, r := range runs {
		response = append(response, toRunResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

func (rc *RunController) get(ctx *gin.Context) {
	playerID, runID, ok := ids(ctx)
	if !ok {
		return
	}

	run, err := rc.runs.Run(ctx, playerID, runID)
	if err != nil {
		rc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toRunResponse(run))
}

func (rc *RunController) layout(ctx *gin.Context) {
	playerID, runID, ok := ids(ctx)
	if !ok {
		return
	}

	layout, err := rc.runs.Layout(ctx, playerID, runID)
	if err != nil {
		rc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, layout)
}

func (rc *RunController) submit(ctx *gin.Context) {
	playerID, runID, ok := ids(ctx)
	if !ok {
		return
	}

	var request SubmitRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	run, err := rc.runs.SubmitLevel(ctx, playerID, runID, request.Level, request.Inputs)
	if errors.Is(err, game.ErrLevelNotCompleted) && run != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "run": toRunResponse(run)})
		return
	}
	if err != nil {
		rc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toRunResponse(run))
}

func (rc *RunController) abandon(ctx *gin.Context) {
	playerID, runID, ok := ids(ctx)
	if !ok {
		return
	}

	run, err := rc.runs.Abandon(ctx, playerID, runID)
	if err != nil {
		rc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toRunResponse(run))
}

func (rc *RunController) leaderboard(ctx *gin.Context) {
	limit, ok := queryLimit(ctx)
	if !ok {
		return
	}

	entries, err := rc.runs.Leaderboard(ctx, limit)
	if err != nil {
		rc.fail(ctx, err)
		return
	}

	response := make([]LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, toLeaderboardEntry(e))
	}
	ctx.JSON(http.StatusOK, response)
}

func (rc *RunController) standing(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	entry, err := rc.runs.Standing(ctx, playerID)
	if err != nil {
		rc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toLeaderboardEntry(entry))
}

// queryLimit reads the optional limit query parameter; zero means unset.
func queryLimit(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return 0, false
	}
	return n, true
}

// ids reads the authenticated player and the run ID path parameter, writing the
// error response itself when either is missing.
func ids(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}
	runID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return uuid.Nil, uuid.Nil, false
	}
	return playerID, runID, true
}

// fail maps service errors to status codes.
func (rc *RunController) fail(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dmn.ErrRunNotFound), errors.Is(err, dmn.ErrPlayerNotFound), errors.Is(err, dmn.ErrNotRanked):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNotRunOwner):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrRunFinished), errors.Is(err, service.ErrLevelMismatch):
		status = http.StatusConflict
	case errors.Is(err, game.ErrLevelNotCompleted):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, dmn.ErrInvalidDifficulty), errors.Is(err, service.ErrTraceTooLong):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		rc.logger.Error("request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(status, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
