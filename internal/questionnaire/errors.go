package questionnaire

import "errors"

var (
	ErrUnsupportedArtifactType = errors.New("unsupported artifact type")
	ErrSessionCompleted        = errors.New("questionnaire already completed")
	ErrAtFirstQuestion         = errors.New("already at the first question")
	ErrValidation              = errors.New("invalid answer")
)

// ValidationError is returned when an answer is rejected. The session is
// left untouched so the same question can be answered again.
type ValidationError struct {
	QuestionID string
	Message    string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
