package usecases

import (
	"context"
	"strings"
	"time"

	"warsztat/internal/domain/request"
	"warsztat/internal/shared/errors"
	"warsztat/internal/shared/logger"
)

type CreateRequestCommand struct {
	FirstName  string
	LastName   string
	Phone      string
	Slot       string
	Subject    string
	OwnerLogin *string
}

type CreateRequestResult struct {
	RequestID uint
	CreatedAt time.Time
	// NotificationFailed is set only when a configured notifier could not
	// reach the workshop inbox. The request is stored either way, and with
	// notifications disabled no delivery is attempted or reported.
	NotificationFailed bool
}

type CreateRequestUseCase struct {
	requestRepo request.Repository
	notifier    NotificationService
	logger      logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo request.Repository,
	notifier NotificationService,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo: requestRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*CreateRequestResult, error) {
	uc.logger.Infow("executing create request use case",
		"first_name", cmd.FirstName, "last_name", cmd.LastName, "slot", cmd.Slot)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create request command", "error", err)
		return nil, err
	}

	newRequest, err := request.NewServiceRequest(
		cmd.FirstName,
		cmd.LastName,
		cmd.Phone,
		cmd.Slot,
		cmd.Subject,
		cmd.OwnerLogin,
	)
	if err != nil {
		uc.logger.Errorw("failed to create request entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Save(ctx, newRequest); err != nil {
		uc.logger.Errorw("failed to save request", "error", err)
		return nil, err
	}

	uc.logger.Infow("service request created", "request_id", newRequest.ID())

	result := &CreateRequestResult{
		RequestID: newRequest.ID(),
		CreatedAt: newRequest.CreatedAt(),
	}

	// Notification happens after commit and its failure is swallowed; the
	// stored request must survive an unreachable SMTP server.
	if uc.notifier != nil {
		if err := uc.notifier.SendRequestReceived(newRequest); err != nil {
			uc.logger.Errorw("failed to send request notification",
				"error", err, "request_id", newRequest.ID())
			result.NotificationFailed = true
		}
	}

	return result, nil
}

func (uc *CreateRequestUseCase) validateCommand(cmd CreateRequestCommand) error {
	if strings.TrimSpace(cmd.FirstName) == "" ||
		strings.TrimSpace(cmd.LastName) == "" ||
		strings.TrimSpace(cmd.Phone) == "" ||
		strings.TrimSpace(cmd.Slot) == "" ||
		strings.TrimSpace(cmd.Subject) == "" {
		return errors.NewValidationError("Uzupełnij wszystkie pola.")
	}
	return nil
}
