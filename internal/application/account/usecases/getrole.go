package usecases

import (
	"context"

	"warsztat/internal/domain/account"
	"warsztat/internal/shared/authorization"
	"warsztat/internal/shared/logger"
)

type GetRoleUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetRoleUseCase(accountRepo account.Repository, logger logger.Interface) *GetRoleUseCase {
	return &GetRoleUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Execute resolves the current role for a login. The permission middleware
// calls this on every admin request so a role change takes effect without
// waiting for the session token to expire.
func (uc *GetRoleUseCase) Execute(ctx context.Context, login string) (authorization.Role, error) {
	acc, err := uc.accountRepo.FindByLogin(ctx, login)
	if err != nil {
		return "", err
	}

	return acc.Role(), nil
}
