package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"founderkit/internal/models/db_models"
)

type ArtifactFilter struct {
	VentureID string
	Type      string
}

type ArtifactRepository interface {
	Create(ctx context.Context, artifact *db_models.Artifact) error
	FindByID(ctx context.Context, id string) (*db_models.Artifact, error)
	List(ctx context.Context, filter ArtifactFilter) ([]db_models.Artifact, error)
	Update(ctx context.Context, artifact *db_models.Artifact) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

type artifactRepository struct {
	db *gorm.DB
}

func NewArtifactRepository(db *gorm.DB) ArtifactRepository {
	return &artifactRepository{db: db}
}

func (a *artifactRepository) Create(ctx context.Context, artifact *db_models.Artifact) error {
	return a.db.WithContext(ctx).Create(artifact).Error
}

func (a *artifactRepository) FindByID(ctx context.Context, id string) (*db_models.Artifact, error) {
	var artifact db_models.Artifact
	err := a.db.WithContext(ctx).Where("id = ?", id).First(&artifact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &artifact, nil
}

func (a *artifactRepository) List(ctx context.Context, filter ArtifactFilter) ([]db_models.Artifact, error) {
	var artifacts []db_models.Artifact
	err := a.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		if filter.VentureID != "" {
			db = db.Where("venture_id = ?", filter.VentureID)
		}
		if filter.Type != "" {
			db = db.Where("type = ?", filter.Type)
		}
		return db
	}).Order("created_at DESC").Find(&artifacts).Error
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

func (a *artifactRepository) Update(ctx context.Context, artifact *db_models.Artifact) error {
	return a.db.WithContext(ctx).Save(artifact).Error
}

func (a *artifactRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := a.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.Artifact{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
