package usecases

import (
	"context"

	"warsztat/internal/domain/request"
	"warsztat/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc     func(ctx context.Context, req *request.ServiceRequest) error
	FindByIDFunc func(ctx context.Context, id uint) (*request.ServiceRequest, error)
	ListFunc     func(ctx context.Context) ([]*request.ServiceRequest, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.ServiceRequest) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) FindByID(ctx context.Context, id uint) (*request.ServiceRequest, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context) ([]*request.ServiceRequest, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockArchiveRepository struct {
	InsertFromFunc func(ctx context.Context, archived *request.ArchivedRequest) error
	ListFunc       func(ctx context.Context) ([]*request.ArchivedRequest, error)
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *mockArchiveRepository) InsertFrom(ctx context.Context, archived *request.ArchivedRequest) error {
	if m.InsertFromFunc != nil {
		return m.InsertFromFunc(ctx, archived)
	}
	return nil
}

func (m *mockArchiveRepository) List(ctx context.Context) ([]*request.ArchivedRequest, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockArchiveRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// mockTransactionManager runs the callback directly; Rollbacks records whether
// the callback failed, mirroring a real rollback.
type mockTransactionManager struct {
	Rollbacks int
}

func (m *mockTransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.Rollbacks++
		return err
	}
	return nil
}

type mockNotificationService struct {
	SendRequestReceivedFunc func(req *request.ServiceRequest) error
	Sent                    []*request.ServiceRequest
}

func (m *mockNotificationService) SendRequestReceived(req *request.ServiceRequest) error {
	m.Sent = append(m.Sent, req)
	if m.SendRequestReceivedFunc != nil {
		return m.SendRequestReceivedFunc(req)
	}
	return nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}
