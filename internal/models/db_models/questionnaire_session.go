package db_models

import (
	"time"

	"github.com/google/uuid"

	"founderkit/internal/questionnaire"
)

// QuestionnaireSession is the record kept in the session store between
// requests. It wraps the engine state with the ids the service needs.
type QuestionnaireSession struct {
	ID              string                 `json:"id"`
	VentureID       string                 `json:"venture_id"`
	DraftArtifactID *uuid.UUID             `json:"draft_artifact_id,omitempty"`
	ArtifactID      *uuid.UUID             `json:"artifact_id,omitempty"`
	Session         *questionnaire.Session `json:"session"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}
