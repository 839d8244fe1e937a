package response_models

import "founderkit/internal/models/request_models"

type ChatResponse struct {
	Content string                             `json:"content"`
	Context request_models.ConversationContext `json:"context"`
}

type AnalysisResponse struct {
	Analysis     string   `json:"analysis"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Suggestions  []string `json:"suggestions"`
	Questions    []string `json:"questions"`
}
