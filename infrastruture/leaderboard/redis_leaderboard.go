// Package leaderboard keeps best scores in a Redis sorted set.
package leaderboard

import (
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/maze-runner/domain"
	"github.com/beka-birhanu/maze-runner/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLeaderboard stores one member per player, scored by the best run.
type RedisLeaderboard struct {
	client *redis.Client
	key    string
}

var _ i.Leaderboard = (*RedisLeaderboard)(nil)

// NewRedisLeaderboard creates a leaderboard stored under key.
func NewRedisLeaderboard(client *redis.Client, key string) (*RedisLeaderboard, error) {
	if client == nil {
		return nil, errors.New("leaderboard: nil redis client")
	}
	if key == "" {
		return nil, errors.New("leaderboard: empty key")
	}
	return &RedisLeaderboard{client: client, key: key}, nil
}

// Submit keeps the higher of the stored and the submitted score.
func (l *RedisLeaderboard) Submit(ctx context.Context, playerID uuid.UUID, score int) error {
	z := redis.Z{Score: float64(score), Member: playerID.String()}
	if err := l.client.ZAddGT(ctx, l.key, z).Err(); err != nil {
		return fmt.Errorf("leaderboard submit: %w", err)
	}
	return nil
}

// Top returns the best limit players.
func (l *RedisLeaderboard) Top(ctx context.Context, limit int) ([]i.Standing, error) {
	if limit <= 0 {
		return []i.Standing{}, nil
	}
	zs, err := l.client.ZRevRangeWithScores(ctx, l.key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard top: %w", err)
	}
	return toStandings(zs, 0), nil
}

// Standing returns the rank and best score of a player, or dmn.ErrNotRanked.
func (l *RedisLeaderboard) Standing(ctx context.Context, playerID uuid.UUID) (i.Standing, error) {
	member := playerID.String()

	rank, err := l.client.ZRevRank(ctx, l.key, member).Result()
	if errors.Is(err, redis.Nil) {
		return i.Standing{}, dmn.ErrNotRanked
	}
	if err != nil {
		return i.Standing{}, fmt.Errorf("leaderboard rank: %w", err)
	}

	score, err := l.client.ZScore(ctx, l.key, member).Result()
	if err != nil {
		return i.Standing{}, fmt.Errorf("leaderboard score: %w", err)
	}
	return i.Standing{PlayerID: playerID, Score: int(score), Rank: int(rank) + 1}, nil
}

// toStandings converts a page of sorted-set entries starting at offset.
// Members that are not player IDs are skipped.
func toStandings(zs []redis.Z, offset int) []i.Standing {
	out := make([]i.Standing, 0, len(zs))
	for n, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		out = append(out, i.Standing{PlayerID: id, Score: int(z.Score), Rank: offset + n + 1})
	}
	return out
}
