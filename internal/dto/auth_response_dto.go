package dto

// DevTokenRequest asks for a signed token acting as UserID in Role.
type DevTokenRequest struct {
	UserID string `json:"userID" binding:"required,max=64"`
	Role   string `json:"role" binding:"required"`
}

// LoginResponse represents the response for a successful token issue.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}
