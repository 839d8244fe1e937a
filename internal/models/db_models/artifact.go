package db_models

import "github.com/google/uuid"

const (
	ArtifactStatusDraft    = "draft"
	ArtifactStatusComplete = "complete"
)

// Artifact content is stored as JSON text; the storage boundary owns the
// encoding.
type Artifact struct {
	BaseModel
	Type           string `gorm:"index;not null"`
	Status         string `gorm:"not null;default:draft"`
	Content        string `gorm:"type:text"`
	ModuleID       string
	IsFoundational bool
	VentureID      string    `gorm:"index;not null"`
	UserID         uuid.UUID `gorm:"type:uuid;index"`
}

func ValidArtifactStatus(status string) bool {
	return status == ArtifactStatusDraft || status == ArtifactStatusComplete
}
