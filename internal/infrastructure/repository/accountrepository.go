package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"warsztat/internal/domain/account"
	"warsztat/internal/infrastructure/persistence/mappers"
	"warsztat/internal/infrastructure/persistence/models"
	db "warsztat/internal/shared/db"
	"warsztat/internal/shared/errors"
)

type AccountRepository struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{
		db:     db,
		mapper: mappers.NewAccountMapper(),
	}
}

func (r *AccountRepository) Save(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("account with this login already exists")
		}
		return fmt.Errorf("failed to save account: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *AccountRepository) FindByLogin(ctx context.Context, login string) (*account.Account, error) {
	var model models.AccountModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("login = ?", login).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AccountRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.AccountModel{}).
		Where("login = ?", login).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}

	return count > 0, nil
}
