// Package api defines the JSON response envelopes shared by all handlers.
package api

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of simple acknowledgement responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
