package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warsztat/internal/domain/account"
	"warsztat/internal/shared/authorization"
	apperrors "warsztat/internal/shared/errors"
)

func testAccount(t *testing.T, login, hash string, role authorization.Role) *account.Account {
	t.Helper()
	acc, err := account.ReconstructAccount(1, login, hash, role)
	require.NoError(t, err)
	return acc
}

func TestAuthenticateUseCase_Execute_Success(t *testing.T) {
	mockRepo := &mockAccountRepository{
		FindByLoginFunc: func(ctx context.Context, login string) (*account.Account, error) {
			return testAccount(t, login, "hashed:pw1", authorization.RoleClient), nil
		},
	}
	mockHasher := &mockPasswordHasher{
		VerifyFunc: func(password, hash string) error {
			if hash != "hashed:"+password {
				return errors.New("password verification failed")
			}
			return nil
		},
	}
	mockLog := &mockLogger{}

	useCase := NewAuthenticateUseCase(mockRepo, mockHasher, mockLog)
	result, err := useCase.Execute(context.Background(), AuthenticateCommand{
		Login:    "alice",
		Password: "pw1",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "alice", result.Login)
	assert.Equal(t, "klient", result.Role)
}

func TestAuthenticateUseCase_Execute_WrongPassword(t *testing.T) {
	mockRepo := &mockAccountRepository{
		FindByLoginFunc: func(ctx context.Context, login string) (*account.Account, error) {
			return testAccount(t, login, "hashed:pw1", authorization.RoleClient), nil
		},
	}
	mockHasher := &mockPasswordHasher{
		VerifyFunc: func(password, hash string) error {
			return errors.New("password verification failed")
		},
	}
	mockLog := &mockLogger{}

	useCase := NewAuthenticateUseCase(mockRepo, mockHasher, mockLog)
	result, err := useCase.Execute(context.Background(), AuthenticateCommand{
		Login:    "alice",
		Password: "zle-haslo",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsUnauthorizedError(err))
	assert.Contains(t, err.Error(), "Błędne hasło.")
}

func TestAuthenticateUseCase_Execute_AccountNotFound(t *testing.T) {
	mockRepo := &mockAccountRepository{
		FindByLoginFunc: func(ctx context.Context, login string) (*account.Account, error) {
			return nil, apperrors.NewNotFoundError("account not found")
		},
	}
	mockHasher := &mockPasswordHasher{}
	mockLog := &mockLogger{}

	useCase := NewAuthenticateUseCase(mockRepo, mockHasher, mockLog)
	result, err := useCase.Execute(context.Background(), AuthenticateCommand{
		Login:    "nikt",
		Password: "pw1",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Nie znaleziono konta.")
}

func TestAuthenticateUseCase_Execute_MissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		command AuthenticateCommand
	}{
		{name: "empty login", command: AuthenticateCommand{Login: "", Password: "pw1"}},
		{name: "empty password", command: AuthenticateCommand{Login: "alice", Password: ""}},
		{name: "both empty", command: AuthenticateCommand{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findCalled := false
			mockRepo := &mockAccountRepository{
				FindByLoginFunc: func(ctx context.Context, login string) (*account.Account, error) {
					findCalled = true
					return nil, nil
				},
			}
			mockHasher := &mockPasswordHasher{}
			mockLog := &mockLogger{}

			useCase := NewAuthenticateUseCase(mockRepo, mockHasher, mockLog)
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Contains(t, err.Error(), "Podaj login i hasło.")
			assert.False(t, findCalled)
		})
	}
}

func TestGetRoleUseCase_Execute(t *testing.T) {
	mockRepo := &mockAccountRepository{
		FindByLoginFunc: func(ctx context.Context, login string) (*account.Account, error) {
			return testAccount(t, login, "hash", authorization.RoleAdmin), nil
		},
	}
	mockLog := &mockLogger{}

	useCase := NewGetRoleUseCase(mockRepo, mockLog)
	role, err := useCase.Execute(context.Background(), "admin")

	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, role)
	assert.True(t, role.IsAdmin())
}

func TestGetRoleUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockAccountRepository{
		FindByLoginFunc: func(ctx context.Context, login string) (*account.Account, error) {
			return nil, apperrors.NewNotFoundError("account not found")
		},
	}
	mockLog := &mockLogger{}

	useCase := NewGetRoleUseCase(mockRepo, mockLog)
	role, err := useCase.Execute(context.Background(), "usuniety")

	require.Error(t, err)
	assert.Empty(t, role)
	assert.True(t, apperrors.IsNotFoundError(err))
}
