package dto

// ErrorResponse is the uniform error payload for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
