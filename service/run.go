package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	dmn "github.com/beka-birhanu/maze-runner/domain"
	"github.com/beka-birhanu/maze-runner/game"
	"github.com/beka-birhanu/maze-runner/service/i"
	"github.com/google/uuid"
)

const (
	defaultLockPrefix     = "maze-runner"
	defaultMaxTraceInputs = 1 << 16
	defaultPageSize       = 10
	maxPageSize           = 100

	runLockKeyFmt = "%s:run:%s:lock"
)

// Run errors.
var (
	ErrRunFinished       = errors.New("run is already finished")
	ErrNotRunOwner       = errors.New("run belongs to another player")
	ErrLevelMismatch     = errors.New("submitted level is not the current level")
	ErrTraceTooLong      = errors.New("input trace is too long")
	ErrLevelNotCompleted = game.ErrLevelNotCompleted
)

// RunOptions tunes a RunService. Zero values fall back to defaults.
type RunOptions struct {
	LockPrefix     string
	Game           *game.Config
	MaxTraceInputs int
	SeedSource     func() int64
	Clock          func() time.Time
}

// RunService starts runs, serves level layouts and verifies submitted levels by
// replaying them against the run's seed.
type RunService struct {
	runs        i.RunRepo
	players     i.PlayerRepo
	leaderboard i.Leaderboard
	locker      i.Locker
	logger      i.Logger

	lockPrefix     string
	game           game.Config
	maxTraceInputs int
	seed           func() int64
	now            func() time.Time
}

// NewRunService creates a RunService.
func NewRunService(runs i.RunRepo, players i.PlayerRepo, lb i.Leaderboard, locker i.Locker, logger i.Logger, opts *RunOptions) (*RunService, error) {
	if runs == nil || players == nil || lb == nil || locker == nil || logger == nil {
		return nil, errors.New("run service: nil dependency")
	}
	if opts == nil {
		opts = &RunOptions{}
	}

	s := &RunService{
		runs:           runs,
		players:        players,
		leaderboard:    lb,
		locker:         locker,
		logger:         logger,
		lockPrefix:     opts.LockPrefix,
		game:           game.DefaultConfig(),
		maxTraceInputs: opts.MaxTraceInputs,
		seed:           opts.SeedSource,
		now:            opts.Clock,
	}
	if opts.Game != nil {
		s.game = *opts.Game
	}
	if s.lockPrefix == "" {
		s.lockPrefix = defaultLockPrefix
	}
	if s.maxTraceInputs <= 0 {
		s.maxTraceInputs = defaultMaxTraceInputs
	}
	if s.seed == nil {
		s.seed = rand.Int63
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}

	// Reject a bad game configuration here rather than on the first request.
	if _, err := game.New(0, 1, s.game); err != nil {
		return nil, fmt.Errorf("run service: %w", err)
	}
	return s, nil
}

// Start creates a run for the player and returns the layout of its first level.
func (s *RunService) Start(ctx context.Context, playerID uuid.UUID, difficulty string) (*dmn.Run, game.Layout, error) {
	d, err := dmn.ParseDifficulty(difficulty)
	if err != nil {
		return nil, game.Layout{}, err
	}
	if _, err := s.players.ByID(ctx, playerID); err != nil {
		return nil, game.Layout{}, err
	}

	run := dmn.NewRun(uuid.New(), playerID, s.seed(), d)
	session, err := game.New(run.Seed, run.Level, s.game)
	if err != nil {
		return nil, game.Layout{}, err
	}

	if err := s.runs.Save(ctx, run); err != nil {
		return nil, game.Layout{}, fmt.Errorf("saving run: %w", err)
	}
	s.logger.Info("run started", "run", run.ID, "player", playerID, "difficulty", d, "level", run.Level)
	return run, session.Layout(), nil
}

// Run returns a run owned by the player.
func (s *RunService) Run(ctx context.Context, playerID, runID uuid.UUID) (*dmn.Run, error) {
	return s.ownedRun(ctx, playerID, runID)
}

// Layout regenerates the current level of an active run.
func (s *RunService) Layout(ctx context.Context, playerID, runID uuid.UUID) (game.Layout, error) {
	run, err := s.ownedRun(ctx, playerID, runID)
	if err != nil {
		return game.Layout{}, err
	}
	if run.Finished() {
		return game.Layout{}, ErrRunFinished
	}

	session, err := game.New(run.Seed, run.Level, s.game)
	if err != nil {
		return game.Layout{}, err
	}
	return session.Layout(), nil
}

// SubmitLevel replays the input trace against the current level. A trace that
// reaches the goal is recorded and the run moves on or is won; any other trace
// loses the run and ErrLevelNotCompleted is returned with the finished run.
func (s *RunService) SubmitLevel(ctx context.Context, playerID, runID uuid.UUID, level int, trace []game.Input) (*dmn.Run, error) {
	if len(trace) > s.maxTraceInputs {
		return nil, ErrTraceTooLong
	}

	unlock, err := s.locker.Lock(ctx, fmt.Sprintf(runLockKeyFmt, s.lockPrefix, runID))
	if err != nil {
		return nil, fmt.Errorf("locking run: %w", err)
	}
	defer unlock()

	run, err := s.ownedRun(ctx, playerID, runID)
	if err != nil {
		return nil, err
	}
	if run.Finished() {
		return nil, ErrRunFinished
	}
	if level != run.Level {
		return nil, ErrLevelMismatch
	}

	res, err := game.ReplayLevel(run.Seed, run.Level, s.game, trace)
	if errors.Is(err, game.ErrLevelNotCompleted) {
		run.End(dmn.RunLost)
		if err := s.finish(ctx, run); err != nil {
			return nil, err
		}
		return run, ErrLevelNotCompleted
	}
	if err != nil {
		return nil, err
	}

	run.Complete(dmn.LevelCompletion{
		Level:       res.Level,
		Points:      res.Points,
		TimeLeft:    res.TimeLeft,
		Bonuses:     res.Bonuses,
		Ticks:       res.Ticks,
		CompletedAt: s.now(),
	}, game.MaxLevel)
	s.logger.Info("level completed", "run", run.ID, "level", res.Level, "points", res.Points)

	if run.Finished() {
		if err := s.finish(ctx, run); err != nil {
			return nil, err
		}
		return run, nil
	}
	if err := s.runs.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}
	return run, nil
}

// Abandon ends an active run without posting its score.
func (s *RunService) Abandon(ctx context.Context, playerID, runID uuid.UUID) (*dmn.Run, error) {
	unlock, err := s.locker.Lock(ctx, fmt.Sprintf(runLockKeyFmt, s.lockPrefix, runID))
	if err != nil {
		return nil, fmt.Errorf("locking run: %w", err)
	}
	defer unlock()

	run, err := s.ownedRun(ctx, playerID, runID)
	if err != nil {
		return nil, err
	}
	if run.Finished() {
		return nil, ErrRunFinished
	}

	run.End(dmn.RunAbandoned)
	if err := s.runs.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}
	s.logger.Info("run abandoned", "run", run.ID, "level", run.Level)
	return run, nil
}

// History returns the player's most recent runs, newest first. limit is clamped
// to [1, 100]; zero means 10.
func (s *RunService) History(ctx context.Context, playerID uuid.UUID, limit int) ([]*dmn.Run, error) {
	if _, err := s.players.ByID(ctx, playerID); err != nil {
		return nil, err
	}
	runs, err := s.runs.ByPlayer(ctx, playerID, pageSize(limit))
	if err != nil {
		return nil, fmt.Errorf("loading runs: %w", err)
	}
	return runs, nil
}

// Leaderboard returns the best players. limit is clamped to [1, 100]; zero means 10.
func (s *RunService) Leaderboard(ctx context.Context, limit int) ([]i.LeaderboardEntry, error) {
	standings, err := s.leaderboard.Top(ctx, pageSize(limit))
	if err != nil {
		return nil, err
	}

	entries := make([]i.LeaderboardEntry, 0, len(standings))
	for _, st := range standings {
		entry := i.LeaderboardEntry{Rank: st.Rank, PlayerID: st.PlayerID, Score: st.Score}
		if p, err := s.players.ByID(ctx, st.PlayerID); err == nil {
			entry.Username = p.Username
		} else {
			s.logger.Warning("leaderboard player lookup failed", "player", st.PlayerID, "error", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Standing returns the player's own leaderboard entry. A player without a
// finished run gets dmn.ErrNotRanked.
func (s *RunService) Standing(ctx context.Context, playerID uuid.UUID) (i.LeaderboardEntry, error) {
	p, err := s.players.ByID(ctx, playerID)
	if err != nil {
		return i.LeaderboardEntry{}, err
	}
	st, err := s.leaderboard.Standing(ctx, playerID)
	if err != nil {
		return i.LeaderboardEntry{}, err
	}
	return i.LeaderboardEntry{Rank: st.Rank, PlayerID: playerID, Username: p.Username, Score: st.Score}, nil
}

func pageSize(limit int) int {
	if limit == 0 {
		return defaultPageSize
	}
	return min(max(limit, 1), maxPageSize)
}

func (s *RunService) ownedRun(ctx context.Context, playerID, runID uuid.UUID) (*dmn.Run, error) {
	run, err := s.runs.ByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.PlayerID != playerID {
		return nil, ErrNotRunOwner
	}
	return run, nil
}

// finish persists a run that has just ended and posts its score. Leaderboard and
// profile updates are best effort once the run itself is saved.
func (s *RunService) finish(ctx context.Context, run *dmn.Run) error {
	if err := s.runs.Save(ctx, run); err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	s.logger.Info("run finished", "run", run.ID, "status", run.Status, "score", run.Score)

	if err := s.leaderboard.Submit(ctx, run.PlayerID, run.Score); err != nil {
		s.logger.Error("leaderboard submit failed", "run", run.ID, "error", err)
	}

	player, err := s.players.ByID(ctx, run.PlayerID)
	if err != nil {
		s.logger.Error("loading player failed", "player", run.PlayerID, "error", err)
		return nil
	}
	player.RecordRun(run.Score)
	if err := s.players.Save(ctx, player); err != nil {
		s.logger.Error("saving player failed", "player", run.PlayerID, "error", err)
	}
	return nil
}
