package usecases

import (
	"context"
	"time"

	"warsztat/internal/domain/request"
	"warsztat/internal/shared/logger"
)

// ArchivedRequestDTO is the read model for an archived service request.
type ArchivedRequestDTO struct {
	ID         uint      `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Login      *string   `json:"login,omitempty"`
	Phone      string    `json:"phone"`
	Slot       string    `json:"slot"`
	Subject    string    `json:"subject"`
	ArchivedAt time.Time `json:"archived_at"`
}

type ListArchiveUseCase struct {
	archiveRepo request.ArchiveRepository
	logger      logger.Interface
}

func NewListArchiveUseCase(archiveRepo request.ArchiveRepository, logger logger.Interface) *ListArchiveUseCase {
	return &ListArchiveUseCase{
		archiveRepo: archiveRepo,
		logger:      logger,
	}
}

func (uc *ListArchiveUseCase) Execute(ctx context.Context) ([]ArchivedRequestDTO, error) {
	archived, err := uc.archiveRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list archive", "error", err)
		return nil, err
	}

	dtos := make([]ArchivedRequestDTO, len(archived))
	for i, a := range archived {
		dtos[i] = ArchivedRequestDTO{
			ID:         a.ID(),
			CreatedAt:  a.CreatedAt(),
			FirstName:  a.FirstName(),
			LastName:   a.LastName(),
			Login:      a.OwnerLogin(),
			Phone:      a.Phone(),
			Slot:       a.Slot(),
			Subject:    a.Subject(),
			ArchivedAt: a.ArchivedAt(),
		}
	}

	return dtos, nil
}
