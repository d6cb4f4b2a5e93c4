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

type RequestRepository struct {
	db     *gorm.DB
	mapper mappers.RequestMapper
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{
		db:     db,
		mapper: mappers.NewRequestMapper(),
	}
}

func (r *RequestRepository) Save(ctx context.Context, req *request.ServiceRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save service request: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uint) (*request.ServiceRequest, error) {
	var model models.ServiceRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("service request not found")
		}
		return nil, fmt.Errorf("failed to find service request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *RequestRepository) List(ctx context.Context) ([]*request.ServiceRequest, error) {
	var requestModels []models.ServiceRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}

	requests := make([]*request.ServiceRequest, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		requests[i] = req
	}

	return requests, nil
}

func (r *RequestRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ServiceRequestModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("service request not found")
	}
	return nil
}
