package middleware

import (
	"context"

	"warsztat/internal/domain/account"
	"warsztat/internal/shared/logger"
)

type mockAccountRepository struct {
	SaveFunc          func(ctx context.Context, a *account.Account) error
	FindByLoginFunc   func(ctx context.Context, login string) (*account.Account, error)
	ExistsByLoginFunc func(ctx context.Context, login string) (bool, error)
}

func (m *mockAccountRepository) Save(ctx context.Context, a *account.Account) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAccountRepository) FindByLogin(ctx context.Context, login string) (*account.Account, error) {
	if m.FindByLoginFunc != nil {
		return m.FindByLoginFunc(ctx, login)
	}
	return nil, nil
}

func (m *mockAccountRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	if m.ExistsByLoginFunc != nil {
		return m.ExistsByLoginFunc(ctx, login)
	}
	return false, nil
}

type stubEnforcer struct {
	EnforceFunc func(role, resource, action string) (bool, error)
}

func (s *stubEnforcer) Enforce(role, resource, action string) (bool, error) {
	if s.EnforceFunc != nil {
		return s.EnforceFunc(role, resource, action)
	}
	return false, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
