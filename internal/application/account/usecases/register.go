package usecases

import (
	"context"
	"strings"

	"warsztat/internal/domain/account"
	"warsztat/internal/shared/authorization"
	"warsztat/internal/shared/errors"
	"warsztat/internal/shared/logger"
)

type RegisterCommand struct {
	Login    string
	Password string
	Role     string
}

type RegisterResult struct {
	AccountID uint
	Login     string
	Role      string
}

type RegisterUseCase struct {
	accountRepo account.Repository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewRegisterUseCase(
	accountRepo account.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		accountRepo: accountRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	// A login padded with whitespace is the same login; a whitespace-only one
	// is no login at all.
	cmd.Login = strings.TrimSpace(cmd.Login)

	uc.logger.Infow("executing register use case", "login", cmd.Login)

	role, err := uc.validateCommand(cmd)
	if err != nil {
		uc.logger.Errorw("invalid register command", "error", err)
		return nil, err
	}

	exists, err := uc.accountRepo.ExistsByLogin(ctx, cmd.Login)
	if err != nil {
		uc.logger.Errorw("failed to check login availability", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("Taki login już istnieje.")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	newAccount, err := account.NewAccount(cmd.Login, hash, role)
	if err != nil {
		uc.logger.Errorw("failed to create account entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.accountRepo.Save(ctx, newAccount); err != nil {
		// Concurrent registration with the same login loses the unique-index
		// race and surfaces here as a conflict.
		uc.logger.Errorw("failed to save account", "error", err)
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError("Taki login już istnieje.")
		}
		return nil, err
	}

	uc.logger.Infow("account registered", "account_id", newAccount.ID(), "login", newAccount.Login())

	return &RegisterResult{
		AccountID: newAccount.ID(),
		Login:     newAccount.Login(),
		Role:      newAccount.Role().String(),
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) (authorization.Role, error) {
	if len(cmd.Login) == 0 || len(cmd.Password) == 0 {
		return "", errors.NewValidationError("Podaj login i hasło.")
	}

	if len(cmd.Login) > 64 {
		return "", errors.NewValidationError("login exceeds maximum length of 64 characters")
	}

	// Self-service registration defaults to the client role.
	roleValue := cmd.Role
	if roleValue == "" {
		roleValue = authorization.RoleClient.String()
	}

	role, err := authorization.ParseRole(roleValue)
	if err != nil {
		return "", errors.NewValidationError("Nieprawidłowe uprawnienie.")
	}

	return role, nil
}
