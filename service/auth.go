package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/maze-runner/domain"
	"github.com/beka-birhanu/maze-runner/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// ErrInvalidCredentials is returned by SignIn for an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth registers players and signs them in.
type Auth struct {
	playerRepo i.PlayerRepo
	tokenizer  i.Tokenizer
}

// NewAuthService creates an Auth service.
func NewAuthService(pr i.PlayerRepo, t i.Tokenizer) (*Auth, error) {
	if pr == nil || t == nil {
		return nil, errors.New("auth service: nil dependency")
	}
	return &Auth{playerRepo: pr, tokenizer: t}, nil
}

// Register creates a player. The wallet address may be empty.
func (a *Auth) Register(ctx context.Context, username, password, walletAddress string) (*dmn.Player, error) {
	if _, err := a.playerRepo.ByUsername(ctx, username); err == nil {
		return nil, dmn.ErrUsernameTaken
	} else if !errors.Is(err, dmn.ErrPlayerNotFound) {
		return nil, err
	}

	player, err := dmn.NewPlayer(dmn.PlayerConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
		WalletAddress: walletAddress,
	})
	if err != nil {
		return nil, err
	}

	if err := a.playerRepo.Save(ctx, player); err != nil {
		return nil, fmt.Errorf("saving player: %w", err)
	}
	return player, nil
}

// SignIn checks the credentials and returns the player with a fresh token.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.Player, string, error) {
	player, err := a.playerRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !player.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   player.ID,
		"username": player.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return player, token, nil
}

// Profile returns a player by ID.
func (a *Auth) Profile(ctx context.Context, id uuid.UUID) (*dmn.Player, error) {
	return a.playerRepo.ByID(ctx, id)
}
