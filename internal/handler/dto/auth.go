package dto

// SignupRequest is the body of POST /api/auth
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse is returned when the provider accepts the signup
type SignupResponse struct {
	Message string `json:"message"`
}
