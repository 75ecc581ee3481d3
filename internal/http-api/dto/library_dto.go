package dto

// DTOs for the library-card endpoints. Requests deliberately carry no
// binding tags: missing-field errors are reported with the API's own
// messages, not the validator's.

type LoginRequest struct {
	LibraryID string `json:"library_id"`
}

type CreateUserResponse struct {
	Success   bool   `json:"success"`
	UserID    string `json:"user_id"`
	LibraryID string `json:"library_id"`
	Message   string `json:"message"`
}

type LoginResponse struct {
	Success     bool   `json:"success"`
	UserID      string `json:"user_id"`
	LibraryID   string `json:"library_id"`
	SessionID   int64  `json:"session_id"`
	AccessCount int    `json:"access_count"`
	Message     string `json:"message"`
}
