package game

import "errors"

// ErrLevelNotCompleted is returned when an input trace ends or the timer runs out
// before the goal is reached.
var ErrLevelNotCompleted = errors.New("input trace does not complete the level")

// ReplayLevel plays trace against a fresh session built from seed at the given
// level and returns the result of that level. Replay stops as soon as the goal is
// collected; inputs after that point are ignored.
func ReplayLevel(seed int64, level int, cfg Config, trace []Input) (LevelResult, error) {
	s, err := New(seed, level, cfg)
	if err != nil {
		return LevelResult{}, err
	}

	for _, in := range trace {
		for i := 0; i < in.repeat(); i++ {
			if _, err := s.tick(in); err != nil {
				return LevelResult{}, err
			}
			if len(s.results) > 0 {
				return s.results[0], nil
			}
			if s.state != Playing {
				return LevelResult{}, ErrLevelNotCompleted
			}
		}
	}
	return LevelResult{}, ErrLevelNotCompleted
}
