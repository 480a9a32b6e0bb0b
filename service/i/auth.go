package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-runner/domain"
	"github.com/google/uuid"
)

// Authenticator registers players and issues access tokens.
type Authenticator interface {
	Register(ctx context.Context, username, password, walletAddress string) (*dmn.Player, error)
	SignIn(ctx context.Context, username, password string) (*dmn.Player, string, error)
	Profile(ctx context.Context, id uuid.UUID) (*dmn.Player, error)
}
