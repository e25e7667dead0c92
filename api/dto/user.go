package dto

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}
