// Package dto defines Data Transfer Objects for authentication.
package dto

// LoginRequest represents the JSON request body for the login endpoint.
type LoginRequest struct {
	// Username is the operator's login name.
	Username string `json:"username" binding:"required"`
	// Password is the operator's password.
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse represents the JSON response body for the login endpoint.
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
	// Username echoes the authenticated user.
	Username string `json:"username"`
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{
			Field:   "username",
			Message: "username is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}
