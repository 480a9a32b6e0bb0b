package identity

// RegisterRequest is the body of a registration request.
type RegisterRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	WalletAddress string `json:"wallet_address"`
}

// LoginRequest is the body of a login request.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PlayerResponse is the public view of a player.
type PlayerResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	WalletAddress string `json:"wallet_address,omitempty"`
	BestScore     int    `json:"best_score"`
	RunsPlayed    int    `json:"runs_played"`
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	PlayerResponse
	Token string `json:"token"`
}
