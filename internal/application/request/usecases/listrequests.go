package usecases

import (
	"context"
	"time"

	"warsztat/internal/domain/request"
	"warsztat/internal/shared/logger"
)

// RequestDTO is the read model for an active service request.
type RequestDTO struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Login     *string   `json:"login,omitempty"`
	Phone     string    `json:"phone"`
	Slot      string    `json:"slot"`
	Subject   string    `json:"subject"`
}

type ListRequestsUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewListRequestsUseCase(requestRepo request.Repository, logger logger.Interface) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(ctx context.Context) ([]RequestDTO, error) {
	requests, err := uc.requestRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, err
	}

	dtos := make([]RequestDTO, len(requests))
	for i, req := range requests {
		dtos[i] = RequestDTO{
			ID:        req.ID(),
			CreatedAt: req.CreatedAt(),
			FirstName: req.FirstName(),
			LastName:  req.LastName(),
			Login:     req.OwnerLogin(),
			Phone:     req.Phone(),
			Slot:      req.Slot(),
			Subject:   req.Subject(),
		}
	}

	return dtos, nil
}
