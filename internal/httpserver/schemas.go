package httpserver

// Input and output view structs for the HTTP API. Each lists exactly the
// fields its endpoint accepts or returns; the canonical records live in
// models.

// RegistrationInput is the JSON body for POST /auth/registration/.
type RegistrationInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TaskCreateInput is the JSON body for POST /task/.
type TaskCreateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// TaskUpdateInput is the JSON body for PUT /task/{id}/. Updates are full
// replacements: every field must be present, which is why presence is
// checked through pointers rather than zero values.
type TaskUpdateInput struct {
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
	Completed   *bool   `json:"completed" binding:"required"`
}

// TokenResponse is returned by login and registration.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status,omitempty"`
}
