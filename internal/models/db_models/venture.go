package db_models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Venture ids are chosen by the client (for example "demo-venture").
type Venture struct {
	ID               string         `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"not null" json:"name"`
	Type             string         `json:"type,omitempty"`
	Industry         string         `json:"industry,omitempty"`
	Country          string         `json:"country,omitempty"`
	Description      string         `json:"description,omitempty"`
	UserID           uuid.UUID      `gorm:"type:uuid;index" json:"userId"`
	CompletedModules pq.StringArray `gorm:"type:text[]" json:"completedModules"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (v *Venture) HasCompleted(module string) bool {
	return slices.Contains(v.CompletedModules, module)
}
