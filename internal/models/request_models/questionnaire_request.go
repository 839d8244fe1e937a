package request_models

type StartQuestionnaireRequest struct {
	ArtifactType string `json:"artifact_type" binding:"required"`
	VentureID    string `json:"venture_id" binding:"required"`
}

// SubmitAnswerRequest leaves emptiness checks to the questionnaire so the
// user gets the same inline message for every kind of blank answer.
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}
