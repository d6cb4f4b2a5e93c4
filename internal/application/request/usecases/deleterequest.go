package usecases

import (
	"context"

	"warsztat/internal/domain/request"
	"warsztat/internal/shared/errors"
	"warsztat/internal/shared/logger"
)

type DeleteRequestUseCase struct {
	requestRepo request.Repository
	logger      logger.Interface
}

func NewDeleteRequestUseCase(requestRepo request.Repository, logger logger.Interface) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, id uint) error {
	uc.logger.Infow("executing delete request use case", "request_id", id)

	if err := uc.requestRepo.Delete(ctx, id); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("Zgłoszenie nie istnieje.")
		}
		uc.logger.Errorw("failed to delete request", "error", err, "request_id", id)
		return err
	}

	uc.logger.Infow("service request deleted", "request_id", id)
	return nil
}
