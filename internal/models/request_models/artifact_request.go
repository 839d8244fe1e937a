package request_models

import "encoding/json"

type CreateArtifactRequest struct {
	Type           string          `json:"type" binding:"required"`
	Content        json.RawMessage `json:"content" binding:"required"`
	VentureID      string          `json:"ventureId" binding:"required"`
	ModuleID       string          `json:"moduleId"`
	IsFoundational bool            `json:"isFoundational"`
	Status         string          `json:"status"`
}

// UpdateArtifactRequest changes only the fields that are present.
type UpdateArtifactRequest struct {
	Content json.RawMessage `json:"content"`
	Status  *string         `json:"status"`
}

type ListArtifactsQuery struct {
	VentureID string `form:"ventureId"`
	Type      string `form:"type"`
}
