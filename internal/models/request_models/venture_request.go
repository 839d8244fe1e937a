package request_models

type CreateVentureRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	Industry    string `json:"industry"`
	Country     string `json:"country"`
	Description string `json:"description"`
}
