package request_models

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	StageDiscovery  = "discovery"
	StageRefinement = "refinement"
	StageValidation = "validation"
)

type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type ConversationContext struct {
	Stage           string            `json:"stage"`
	PreviousAnswers map[string]string `json:"previousAnswers"`
	CurrentModule   string            `json:"currentModule"`
}

type ChatRequest struct {
	Messages []ChatMessage       `json:"messages" binding:"required,min=1,dive"`
	Context  ConversationContext `json:"context"`
}

type AnalyzeRequest struct {
	ProblemStatement string `json:"problemStatement" binding:"required"`
	Stage            string `json:"stage"`
}

type SaveConversationRequest struct {
	VentureID string              `json:"ventureId" binding:"required"`
	Messages  []ChatMessage       `json:"messages" binding:"required,min=1,dive"`
	Context   ConversationContext `json:"context"`
}
