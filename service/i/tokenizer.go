package i

import "time"

// Tokenizer signs and verifies the access tokens handed to players at sign-in.
// Claims carry the player's ID under "userID" and the username under "username".
type Tokenizer interface {
	// Generate signs claims into a token that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode rejects expired, foreign or tampered tokens and returns the claims of a valid one.
	Decode(token string) (map[string]interface{}, error)
}
