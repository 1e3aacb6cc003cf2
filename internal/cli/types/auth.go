package types

// SignupRequest is the body of POST /api/auth
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResult is returned when the account was created
type SignupResult struct {
	Message string `json:"message"`
}
