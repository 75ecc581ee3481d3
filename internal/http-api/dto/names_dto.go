package dto

type SaveNamesRequest struct {
	UserID string `json:"user_id"`
	Female string `json:"female"`
	Male   string `json:"male"`
}
