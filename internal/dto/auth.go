package dto

// LoginRequest carries the employee credentials for back-office sign-in.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}
