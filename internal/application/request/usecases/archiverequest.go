package usecases

import (
	"context"

	"warsztat/internal/domain/request"
	"warsztat/internal/shared/errors"
	"warsztat/internal/shared/logger"
)

type ArchiveRequestResult struct {
	ArchivedID uint
}

type ArchiveRequestUseCase struct {
	requestRepo request.Repository
	archiveRepo request.ArchiveRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewArchiveRequestUseCase(
	requestRepo request.Repository,
	archiveRepo request.ArchiveRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *ArchiveRequestUseCase {
	return &ArchiveRequestUseCase{
		requestRepo: requestRepo,
		archiveRepo: archiveRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute moves an active request into the archive. Copy and delete run in one
// transaction, so the request is never present in both tables or in neither
// once the call returns.
func (uc *ArchiveRequestUseCase) Execute(ctx context.Context, id uint) (*ArchiveRequestResult, error) {
	uc.logger.Infow("executing archive request use case", "request_id", id)

	var archivedID uint
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		req, err := uc.requestRepo.FindByID(txCtx, id)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewNotFoundError("Zgłoszenie nie istnieje.")
			}
			return err
		}

		archived, err := request.NewArchivedFromRequest(req)
		if err != nil {
			return errors.NewInternalError(err.Error())
		}

		if err := uc.archiveRepo.InsertFrom(txCtx, archived); err != nil {
			return err
		}

		if err := uc.requestRepo.Delete(txCtx, id); err != nil {
			return err
		}

		archivedID = archived.ID()
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to archive request", "error", err, "request_id", id)
		return nil, err
	}

	uc.logger.Infow("service request archived", "request_id", id, "archived_id", archivedID)

	return &ArchiveRequestResult{ArchivedID: archivedID}, nil
}
