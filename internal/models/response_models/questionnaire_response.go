package response_models

import "founderkit/internal/questionnaire"

// QuestionView is what the client renders. Follow-up rules stay server side.
type QuestionView struct {
	ID          string                  `json:"id"`
	Prompt      string                  `json:"prompt"`
	Kind        questionnaire.InputKind `json:"kind"`
	Choices     []string                `json:"choices,omitempty"`
	Placeholder string                  `json:"placeholder,omitempty"`
}

func NewQuestionView(q questionnaire.Question) QuestionView {
	return QuestionView{
		ID:          q.ID,
		Prompt:      q.Prompt,
		Kind:        q.Kind,
		Choices:     q.Choices,
		Placeholder: q.Placeholder,
	}
}

type QuestionnaireResponse struct {
	SessionID       string                  `json:"session_id"`
	ArtifactType    string                  `json:"artifact_type"`
	VentureID       string                  `json:"venture_id"`
	State           string                  `json:"state"`
	IsComplete      bool                    `json:"is_complete"`
	Question        *QuestionView           `json:"question,omitempty"`
	PriorAnswer     string                  `json:"prior_answer,omitempty"`
	Progress        questionnaire.Progress  `json:"progress"`
	Answers         questionnaire.AnswerSet `json:"answers"`
	FollowUps       []string                `json:"follow_ups,omitempty"`
	DraftArtifactID string                  `json:"draft_artifact_id,omitempty"`
	ArtifactID      string                  `json:"artifact_id,omitempty"`
	Artifact        *ArtifactResponse       `json:"artifact,omitempty"`
}

type QuestionBankResponse struct {
	ArtifactType string         `json:"artifact_type"`
	Questions    []QuestionView `json:"questions"`
}
