package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/maze-runner/domain"
	"github.com/beka-birhanu/maze-runner/service/i"
	"github.com/google/uuid"
)

type memPlayers struct {
	sync.Mutex
	byID map[uuid.UUID]dmn.Player
}

func newMemPlayers() *memPlayers {
	return &memPlayers{byID: map[uuid.UUID]dmn.Player{}}
}

func (m *memPlayers) Save(_ context.Context, p *dmn.Player) error {
	m.Lock()
	defer m.Unlock()
	for id, other := range m.byID {
		if other.Username == p.Username && id != p.ID {
			return dmn.ErrUsernameTaken
		}
	}
	m.byID[p.ID] = *p
	return nil
}

func (m *memPlayers) ByID(_ context.Context, id uuid.UUID) (*dmn.Player, error) {
	m.Lock()
	defer m.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, dmn.ErrPlayerNotFound
	}
	return &p, nil
}

func (m *memPlayers) ByUsername(_ context.Context, username string) (*dmn.Player, error) {
	m.Lock()
	defer m.Unlock()
	for _, p := range m.byID {
		if p.Username == username {
			return &p, nil
		}
	}
	return nil, dmn.ErrPlayerNotFound
}

type memRuns struct {
	sync.Mutex
	byID  map[uuid.UUID]dmn.Run
	saves int
}

func newMemRuns() *memRuns {
	return &memRuns{byID: map[uuid.UUID]dmn.Run{}}
}

func (m *memRuns) Save(_ context.Context, r *dmn.Run) error {
	m.Lock()
	defer m.Unlock()
	c := *r
	c.Completions = append([]dmn.LevelCompletion(nil), r.Completions...)
	m.byID[r.ID] = c
	m.saves++
	return nil
}

func (m *memRuns) ByID(_ context.Context, id uuid.UUID) (*dmn.Run, error) {
	m.Lock()
	defer m.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, dmn.ErrRunNotFound
	}
	r.Completions = append([]dmn.LevelCompletion(nil), r.Completions...)
	return &r, nil
}

func (m *memRuns) ByPlayer(_ context.Context, playerID uuid.UUID, limit int) ([]*dmn.Run, error) {
	m.Lock()
	defer m.Unlock()
	var out []*dmn.Run
	for _, r := range m.byID {
		if r.PlayerID == playerID {
			r := r
			out = append(out, &r)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].StartedAt.After(out[b].StartedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memBoard struct {
	sync.Mutex
	scores map[uuid.UUID]int
	fail   error
}

func newMemBoard() *memBoard {
	return &memBoard{scores: map[uuid.UUID]int{}}
}

func (b *memBoard) Submit(_ context.Context, id uuid.UUID, score int) error {
	b.Lock()
	defer b.Unlock()
	if b.fail != nil {
		return b.fail
	}
	if old, ok := b.scores[id]; !ok || score > old {
		b.scores[id] = score
	}
	return nil
}

func (b *memBoard) Top(_ context.Context, limit int) ([]i.Standing, error) {
	b.Lock()
	defer b.Unlock()
	out := make([]i.Standing, 0, len(b.scores))
	for id, s := range b.scores {
		out = append(out, i.Standing{PlayerID: id, Score: s})
	}
	sort.Slice(out, func(a, c int) bool { return out[a].Score > out[c].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	for n := range out {
		out[n].Rank = n + 1
	}
	return out, nil
}

func (b *memBoard) Standing(ctx context.Context, id uuid.UUID) (i.Standing, error) {
	top, err := b.Top(ctx, 1<<20)
	if err != nil {
		return i.Standing{}, err
	}
	for _, s := range top {
		if s.PlayerID == id {
			return s, nil
		}
	}
	return i.Standing{}, dmn.ErrNotRanked
}

type memLocker struct {
	mu   sync.Mutex
	keys []string
	held map[string]bool
}

func (l *memLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held == nil {
		l.held = map[string]bool{}
	}
	if l.held[key] {
		return nil, errors.New("already locked")
	}
	l.held[key] = true
	l.keys = append(l.keys, key)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, key)
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Warning(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{})   {}

type fakeTokenizer struct {
	claims map[string]interface{}
	exp    time.Duration
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	f.claims, f.exp = claims, exp
	return "signed-token", nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return f.claims, nil
}
