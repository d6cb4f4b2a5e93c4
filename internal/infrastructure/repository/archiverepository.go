package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"warsztat/internal/domain/request"
	"warsztat/internal/infrastructure/persistence/mappers"
	"warsztat/internal/infrastructure/persistence/models"
	db "warsztat/internal/shared/db"
	"warsztat/internal/shared/errors"
)

type ArchiveRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewArchiveRepository(db *gorm.DB) *ArchiveRepository {
	return &ArchiveRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *ArchiveRepository) InsertFrom(ctx context.Context, archived *request.ArchivedRequest) error {
	model := r.mapper.ArchivedToModel(archived)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to insert archived request: %w", err)
	}

	if err := archived.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ArchiveRepository) List(ctx context.Context) ([]*request.ArchivedRequest, error) {
	var archivedModels []models.ArchivedRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("archived_at DESC").
		Find(&archivedModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list archived requests: %w", err)
	}

	archived := make([]*request.ArchivedRequest, len(archivedModels))
	for i, model := range archivedModels {
		a, err := r.mapper.ArchivedToDomain(&model)
		if err != nil {
			return nil, err
		}
		archived[i] = a
	}

	return archived, nil
}

func (r *ArchiveRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ArchivedRequestModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete archived request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("archived request not found")
	}
	return nil
}
