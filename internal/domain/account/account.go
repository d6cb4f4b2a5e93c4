package account

import (
	"fmt"

	"warsztat/internal/shared/authorization"
)

// Account is the user-account aggregate. The password is only ever held as a
// one-way hash; plaintext never enters the domain.
type Account struct {
	id           uint
	login        string
	passwordHash string
	role         authorization.Role
}

func NewAccount(login, passwordHash string, role authorization.Role) (*Account, error) {
	if len(login) == 0 {
		return nil, fmt.Errorf("login is required")
	}
	if len(login) > 64 {
		return nil, fmt.Errorf("login exceeds maximum length of 64 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Account{
		login:        login,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func ReconstructAccount(id uint, login, passwordHash string, role authorization.Role) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if len(login) == 0 {
		return nil, fmt.Errorf("login is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Account{
		id:           id,
		login:        login,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func (a *Account) ID() uint {
	return a.id
}

func (a *Account) Login() string {
	return a.login
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) Role() authorization.Role {
	return a.role
}

func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}
