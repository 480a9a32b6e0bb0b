package domain

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordStrengthScore = 3
	passwordHashCost         = 12

	usernamePattern   = `^[a-zA-Z0-9_]+$` // Alphanumeric with underscores
	minUsernameLength = 3
	maxUsernameLength = 20

	// Stacks addresses: S, a version character, then c32 characters.
	walletPattern = `^S[MNPT][0-9A-Z]{26,40}$`
)

var (
	usernameRegex = regexp.MustCompile(usernamePattern)
	walletRegex   = regexp.MustCompile(walletPattern)
)

// Player validation errors.
var (
	ErrUsernameTooShort     = errors.New("username too short")
	ErrUsernameTooLong      = errors.New("username too long")
	ErrInvalidUsername      = errors.New("invalid username format")
	ErrWeakPassword         = errors.New("weak password")
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
)

// Player is a registered account together with its best result.
type Player struct {
	ID            uuid.UUID `bson:"_id"`
	Username      string    `bson:"username"`
	PasswordHash  string    `bson:"passwordHash"`
	WalletAddress string    `bson:"walletAddress,omitempty"`
	BestScore     int       `bson:"bestScore"`
	RunsPlayed    int       `bson:"runsPlayed"`
}

// PlayerConfig holds parameters for creating a Player.
type PlayerConfig struct {
	ID            uuid.UUID
	Username      string
	PlainPassword string
	WalletAddress string // WalletAddress is optional.
}

// NewPlayer validates the configuration and hashes the password.
func NewPlayer(config PlayerConfig) (*Player, error) {
	if err := validateUsername(config.Username); err != nil {
		return nil, err
	}

	if err := validatePassword(config.PlainPassword); err != nil {
		return nil, err
	}

	if err := ValidateWalletAddress(config.WalletAddress); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(config.PlainPassword)
	if err != nil {
		return nil, err
	}

	return &Player{
		ID:            config.ID,
		Username:      config.Username,
		PasswordHash:  passwordHash,
		WalletAddress: config.WalletAddress,
	}, nil
}

// VerifyPassword verifies if the given password matches the stored hash.
func (p *Player) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password))
	return err == nil
}

// RecordRun counts a finished run and keeps the best score.
func (p *Player) RecordRun(score int) {
	p.RunsPlayed++
	if score > p.BestScore {
		p.BestScore = score
	}
}

// ValidateWalletAddress accepts an empty address or a Stacks principal.
func ValidateWalletAddress(address string) error {
	if address == "" || walletRegex.MatchString(address) {
		return nil
	}
	return ErrInvalidWalletAddress
}

func validateUsername(username string) error {
	if len(username) < minUsernameLength {
		return ErrUsernameTooShort
	}
	if len(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	if !usernameRegex.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// validatePassword checks the strength of the password.
func validatePassword(password string) error {
	result := zxcvbn.PasswordStrength(password, nil)
	if result.Score < minPasswordStrengthScore {
		return ErrWeakPassword
	}
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(bytes), err
}
