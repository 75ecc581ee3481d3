package dto

type UpdateSessionRequest struct {
	SessionID int64 `json:"session_id"`
	PagesRead int   `json:"pages_read"`
}

type EndSessionRequest struct {
	SessionID int64 `json:"session_id"`
}
