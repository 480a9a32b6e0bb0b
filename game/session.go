// Package game runs single-player maze levels on top of the maze and motion packages.
// A Session is advanced one fixed tick at a time, so the same seed and the same input
// trace always produce the same outcome.
package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/beka-birhanu/maze-runner/maze"
	"github.com/beka-birhanu/maze-runner/motion"
)

// Game-related errors.
var (
	ErrInvalidLevel  = errors.New("level is out of range")
	ErrInvalidConfig = errors.New("invalid session configuration")
	ErrNotPlaying    = errors.New("session is not playing")
)

// State is the lifecycle state of a session.
type State int

// Session states.
const (
	Playing State = iota
	Won
	Lost
	Abandoned
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Abandoned:
		return "abandoned"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Event is something that happened during a tick.
type Event int

// Tick events.
const (
	BonusCollected Event = iota + 1
	GoalCollected
	LevelStarted
	RunWon
	TimeExpired
)

// Config holds the physical and scoring parameters of a session.
type Config struct {
	CellSize       float64 // CellSize is the side of one maze cell in world units.
	ActorSize      float64
	Speed          float64 // Speed is in world units per second.
	TicksPerSecond int

	GoalRadius  float64
	BonusRadius float64

	GoalPointsPerLevel int
	BonusPoints        int
	BonusSeconds       int

	Placement PlacementRules
}

// DefaultConfig returns the configuration used by the HTTP API.
func DefaultConfig() Config {
	return Config{
		CellSize:           32,
		ActorSize:          14,
		Speed:              150,
		TicksPerSecond:     60,
		GoalRadius:         25,
		BonusRadius:        20,
		GoalPointsPerLevel: 100,
		BonusPoints:        10,
		BonusSeconds:       3,
		Placement:          DefaultPlacementRules,
	}
}

func (c Config) validate() error {
	if !(c.CellSize > 0) || !(c.ActorSize > 0) || c.ActorSize >= c.CellSize {
		return ErrInvalidConfig
	}
	if !(c.Speed > 0) || c.TicksPerSecond < 1 {
		return ErrInvalidConfig
	}
	return nil
}

// Input is the direction held by the player for a number of ticks. X and Y are
// clamped to [-1, 1]; Ticks below 1 count as a single tick.
type Input struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Ticks int     `json:"ticks,omitempty"`
}

func (in Input) repeat() int {
	return max(in.Ticks, 1)
}

// LevelResult summarizes a completed level.
type LevelResult struct {
	Level    int `json:"level"`
	Points   int `json:"points"`    // Points is the score earned during the level.
	TimeLeft int `json:"time_left"` // TimeLeft is in whole seconds when the goal was reached.
	Bonuses  int `json:"bonuses"`
	Ticks    int `json:"ticks"`
}

// TickResult reports the outcome of one tick.
type TickResult struct {
	Position motion.Vector `json:"position"`
	Moved    bool          `json:"moved"`
	Events   []Event       `json:"events,omitempty"`
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	Level       int           `json:"level"`
	Score       int           `json:"score"`
	TimeLeft    int           `json:"time_left"`
	State       State         `json:"state"`
	Actor       motion.Vector `json:"actor"`
	BonusesLeft int           `json:"bonuses_left"`
}

type item struct {
	cell   maze.Position
	center motion.Vector
	taken  bool
}

// Session is one run through consecutive levels.
type Session struct {
	cfg   Config
	seed  int64
	state State

	level     LevelConfig
	maze      *maze.Maze
	placement Placement
	actor     motion.Vector
	goal      item
	bonuses   []item

	score      int
	levelScore int
	levelTicks int
	ticksLeft  int
	collected  int
	results    []LevelResult

	sync.RWMutex
}

// levelConfig resolves the difficulty of a level. Tests replace it.
var levelConfig = ConfigForLevel

// New starts a session at the given level. Each level's maze is derived from seed
// and the level number, so a session can be replayed from those alone.
func New(seed int64, startLevel int, cfg Config) (*Session, error) {
	if startLevel < 1 || startLevel > MaxLevel {
		return nil, ErrInvalidLevel
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Session{cfg: cfg, seed: seed, state: Playing}
	if err := s.startLevel(startLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// LevelSeed returns the seed a session uses to build the given level.
func LevelSeed(seed int64, level int) int64 {
	return seed + int64(level)*1_000_003
}

func (s *Session) startLevel(level int) error {
	lc := levelConfig(level)
	rng := rand.New(rand.NewSource(LevelSeed(s.seed, level)))

	m, err := maze.New(lc.Width, lc.Height, lc.RelaxationRatio, maze.WithRand(rng))
	if err != nil {
		return err
	}
	if err := m.Generate(); err != nil {
		return err
	}

	p := Place(m, m.ToOccupancyGrid(), lc.Bonuses, s.cfg.Placement, rng)

	s.level = lc
	s.maze = m
	s.placement = p
	s.actor = motion.CenteredAt(motion.WorldPosition(p.Player, s.cfg.CellSize), s.actorSize())
	s.goal = s.newItem(p.Goal)
	s.bonuses = make([]item, 0, len(p.Bonuses))
	for _, b := range p.Bonuses {
		s.bonuses = append(s.bonuses, s.newItem(b))
	}
	s.levelScore = 0
	s.levelTicks = 0
	s.collected = 0
	s.ticksLeft = lc.TimeLimit * s.cfg.TicksPerSecond
	return nil
}

func (s *Session) newItem(cell maze.Position) item {
	return item{cell: cell, center: motion.WorldPosition(cell, s.cfg.CellSize)}
}

func (s *Session) actorSize() motion.Size {
	return motion.Square(s.cfg.ActorSize)
}

// Tick advances the session by one fixed step with the given input direction.
// Ticks on a finished session leave it unchanged. An error means the next level
// could not be built; the session is then lost.
func (s *Session) Tick(in Input) (TickResult, error) {
	s.Lock()
	defer s.Unlock()
	return s.tick(in)
}

func (s *Session) tick(in Input) (TickResult, error) {
	if s.state != Playing {
		return TickResult{Position: s.actor}, nil
	}

	step := s.cfg.Speed / float64(s.cfg.TicksPerSecond)
	delta := motion.Vector{X: clampUnit(in.X) * step, Y: clampUnit(in.Y) * step}
	moved := motion.ResolveMove(s.actor, delta, s.actorSize(), s.maze, s.cfg.CellSize)
	s.actor = moved.Position
	s.levelTicks++

	res := TickResult{Position: s.actor, Moved: moved.Moved}
	center := motion.Bounds(s.actor, s.actorSize()).Center()

	for i := range s.bonuses {
		b := &s.bonuses[i]
		if b.taken || !s.reaches(center, *b, s.cfg.BonusRadius) {
			continue
		}
		b.taken = true
		s.collected++
		s.levelScore += s.cfg.BonusPoints
		s.score += s.cfg.BonusPoints
		s.ticksLeft += s.cfg.BonusSeconds * s.cfg.TicksPerSecond
		res.Events = append(res.Events, BonusCollected)
	}

	if s.reaches(center, s.goal, s.cfg.GoalRadius) {
		events, err := s.completeLevel()
		res.Events = append(res.Events, events...)
		res.Position = s.actor
		return res, err
	}

	s.ticksLeft--
	if s.ticksLeft <= 0 {
		s.ticksLeft = 0
		s.state = Lost
		res.Events = append(res.Events, TimeExpired)
	}
	return res, nil
}

// reaches reports whether an actor centred at center picks up it: the centre lies
// in the item's cell and within radius of the item.
func (s *Session) reaches(center motion.Vector, it item, radius float64) bool {
	return motion.GridPosition(center, s.cfg.CellSize) == it.cell &&
		motion.CheckPointCollision(center, it.center, radius)
}

func (s *Session) completeLevel() ([]Event, error) {
	timeLeft := s.timeLeft()
	points := s.cfg.GoalPointsPerLevel*s.level.Level + timeLeft
	s.levelScore += points
	s.score += points
	s.results = append(s.results, LevelResult{
		Level:    s.level.Level,
		Points:   s.levelScore,
		TimeLeft: timeLeft,
		Bonuses:  s.collected,
		Ticks:    s.levelTicks,
	})

	events := []Event{GoalCollected}
	if s.level.Level >= MaxLevel {
		s.state = Won
		return append(events, RunWon), nil
	}
	next := s.level.Level + 1
	if err := s.startLevel(next); err != nil {
		s.state = Lost
		return events, fmt.Errorf("starting level %d: %w", next, err)
	}
	return append(events, LevelStarted), nil
}

// timeLeft is the countdown in whole seconds, rounded up.
func (s *Session) timeLeft() int {
	tps := s.cfg.TicksPerSecond
	return (s.ticksLeft + tps - 1) / tps
}

// Abandon ends a playing session without a result.
func (s *Session) Abandon() error {
	s.Lock()
	defer s.Unlock()
	if s.state != Playing {
		return ErrNotPlaying
	}
	s.state = Abandoned
	return nil
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.RLock()
	defer s.RUnlock()

	left := 0
	for _, b := range s.bonuses {
		if !b.taken {
			left++
		}
	}
	return Snapshot{
		Level:       s.level.Level,
		Score:       s.score,
		TimeLeft:    s.timeLeft(),
		State:       s.state,
		Actor:       s.actor,
		BonusesLeft: left,
	}
}

// Results returns the levels completed so far, in order.
func (s *Session) Results() []LevelResult {
	s.RLock()
	defer s.RUnlock()
	out := make([]LevelResult, len(s.results))
	copy(out, s.results)
	return out
}

// Maze returns the maze of the current level.
func (s *Session) Maze() *maze.Maze {
	s.RLock()
	defer s.RUnlock()
	return s.maze
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
