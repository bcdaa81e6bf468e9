package login

// LoginRequest is the HTTP request model.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the HTTP response model.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	Name   string `json:"name"`
}
