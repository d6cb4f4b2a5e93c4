package usecases

import (
	"context"

	"warsztat/internal/domain/account"
	"warsztat/internal/shared/errors"
	"warsztat/internal/shared/logger"
)

type AuthenticateCommand struct {
	Login    string
	Password string
}

type AuthenticateResult struct {
	AccountID uint
	Login     string
	Role      string
}

type AuthenticateUseCase struct {
	accountRepo account.Repository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewAuthenticateUseCase(
	accountRepo account.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, cmd AuthenticateCommand) (*AuthenticateResult, error) {
	uc.logger.Infow("executing authenticate use case", "login", cmd.Login)

	if len(cmd.Login) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("Podaj login i hasło.")
	}

	acc, err := uc.accountRepo.FindByLogin(ctx, cmd.Login)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("Nie znaleziono konta.")
		}
		uc.logger.Errorw("failed to find account", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, acc.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "login", cmd.Login)
		return nil, errors.NewUnauthorizedError("Błędne hasło.")
	}

	uc.logger.Infow("account authenticated", "login", acc.Login(), "role", acc.Role().String())

	return &AuthenticateResult{
		AccountID: acc.ID(),
		Login:     acc.Login(),
		Role:      acc.Role().String(),
	}, nil
}
