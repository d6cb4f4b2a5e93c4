package usecases

import (
	"context"

	"warsztat/internal/domain/request"
	"warsztat/internal/shared/errors"
	"warsztat/internal/shared/logger"
)

type DeleteArchivedUseCase struct {
	archiveRepo request.ArchiveRepository
	logger      logger.Interface
}

func NewDeleteArchivedUseCase(archiveRepo request.ArchiveRepository, logger logger.Interface) *DeleteArchivedUseCase {
	return &DeleteArchivedUseCase{
		archiveRepo: archiveRepo,
		logger:      logger,
	}
}

func (uc *DeleteArchivedUseCase) Execute(ctx context.Context, id uint) error {
	uc.logger.Infow("executing delete archived use case", "archived_id", id)

	if err := uc.archiveRepo.Delete(ctx, id); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewNotFoundError("Zgłoszenie w archiwum nie istnieje.")
		}
		uc.logger.Errorw("failed to delete archived request", "error", err, "archived_id", id)
		return err
	}

	uc.logger.Infow("archived request deleted", "archived_id", id)
	return nil
}
