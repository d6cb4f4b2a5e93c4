package mappers

import (
	"warsztat/internal/domain/account"
	"warsztat/internal/infrastructure/persistence/models"
	"warsztat/internal/shared/authorization"
)

// AccountMapper handles the conversion between Account domain entities and persistence models.
type AccountMapper interface {
	ToModel(a *account.Account) *models.AccountModel
	ToDomain(model *models.AccountModel) (*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToModel(a *account.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:           a.ID(),
		Login:        a.Login(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
	}
}

func (m *AccountMapperImpl) ToDomain(model *models.AccountModel) (*account.Account, error) {
	role, err := authorization.ParseRole(model.Role)
	if err != nil {
		return nil, err
	}

	return account.ReconstructAccount(model.ID, model.Login, model.PasswordHash, role)
}
