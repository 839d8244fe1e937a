package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"founderkit/internal/models/db_models"
)

type VentureRepository interface {
	Create(ctx context.Context, venture *db_models.Venture) error
	FindByID(ctx context.Context, id string) (*db_models.Venture, error)
	// AddCompletedModule records module on the venture once; repeated calls
	// are no-ops.
	AddCompletedModule(ctx context.Context, id string, module string) error
}

type ventureRepository struct {
	db *gorm.DB
}

func NewVentureRepository(db *gorm.DB) VentureRepository {
	return &ventureRepository{db: db}
}

func (v *ventureRepository) Create(ctx context.Context, venture *db_models.Venture) error {
	return v.db.WithContext(ctx).Create(venture).Error
}

func (v *ventureRepository) FindByID(ctx context.Context, id string) (*db_models.Venture, error) {
	var venture db_models.Venture
	err := v.db.WithContext(ctx).Where("id = ?", id).First(&venture).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &venture, nil
}

func (v *ventureRepository) AddCompletedModule(ctx context.Context, id string, module string) error {
	return v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var venture db_models.Venture
		if err := tx.Where("id = ?", id).First(&venture).Error; err != nil {
			return err
		}
		if venture.HasCompleted(module) {
			return nil
		}
		venture.CompletedModules = append(venture.CompletedModules, module)
		return tx.Model(&venture).Update("completed_modules", venture.CompletedModules).Error
	})
}
