package response_models

import (
	"encoding/json"
	"time"
)

type ArtifactResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Content        json.RawMessage `json:"content"`
	ModuleID       string          `json:"moduleId,omitempty"`
	IsFoundational bool            `json:"isFoundational"`
	VentureID      string          `json:"ventureId"`
	UserID         string          `json:"userId"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
