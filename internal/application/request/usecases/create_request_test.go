package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warsztat/internal/domain/request"
	apperrors "warsztat/internal/shared/errors"
)

func strPtr(s string) *string {
	return &s
}

func validCreateCommand() CreateRequestCommand {
	return CreateRequestCommand{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Phone:     "+48 601 234 567",
		Slot:      "2026-09-03 10:00",
		Subject:   "Stuki z przodu przy hamowaniu",
	}
}

func TestCreateRequestUseCase_Execute_Success(t *testing.T) {
	var savedRequest *request.ServiceRequest
	mockRepo := &mockRequestRepository{
		SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
			if err := req.SetID(42); err != nil {
				return err
			}
			savedRequest = req
			return nil
		},
	}
	mockNotifier := &mockNotificationService{}
	mockLog := &mockLogger{}

	useCase := NewCreateRequestUseCase(mockRepo, mockNotifier, mockLog)
	cmd := validCreateCommand()
	cmd.OwnerLogin = strPtr("jan")

	result, err := useCase.Execute(context.Background(), cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.RequestID)
	assert.NotZero(t, result.CreatedAt)
	assert.False(t, result.NotificationFailed)

	require.NotNil(t, savedRequest)
	assert.Equal(t, "Jan", savedRequest.FirstName())
	assert.Equal(t, "Kowalski", savedRequest.LastName())
	require.NotNil(t, savedRequest.OwnerLogin())
	assert.Equal(t, "jan", *savedRequest.OwnerLogin())

	require.Len(t, mockNotifier.Sent, 1)
	assert.Equal(t, savedRequest, mockNotifier.Sent[0])
}

func TestCreateRequestUseCase_Execute_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cmd *CreateRequestCommand)
	}{
		{name: "missing first name", mutate: func(cmd *CreateRequestCommand) { cmd.FirstName = "" }},
		{name: "missing last name", mutate: func(cmd *CreateRequestCommand) { cmd.LastName = "" }},
		{name: "missing phone", mutate: func(cmd *CreateRequestCommand) { cmd.Phone = "" }},
		{name: "missing slot", mutate: func(cmd *CreateRequestCommand) { cmd.Slot = "" }},
		{name: "missing subject", mutate: func(cmd *CreateRequestCommand) { cmd.Subject = "" }},
		{name: "whitespace subject", mutate: func(cmd *CreateRequestCommand) { cmd.Subject = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveCalled := false
			mockRepo := &mockRequestRepository{
				SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
					saveCalled = true
					return nil
				},
			}
			mockNotifier := &mockNotificationService{}
			mockLog := &mockLogger{}

			useCase := NewCreateRequestUseCase(mockRepo, mockNotifier, mockLog)
			cmd := validCreateCommand()
			tt.mutate(&cmd)

			result, err := useCase.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Contains(t, err.Error(), "Uzupełnij wszystkie pola.")
			assert.False(t, saveCalled)
			assert.Empty(t, mockNotifier.Sent)
		})
	}
}

func TestCreateRequestUseCase_Execute_NotificationFailureDoesNotFail(t *testing.T) {
	mockRepo := &mockRequestRepository{
		SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
			return req.SetID(1)
		},
	}
	mockNotifier := &mockNotificationService{
		SendRequestReceivedFunc: func(req *request.ServiceRequest) error {
			return errors.New("smtp: connection refused")
		},
	}
	mockLog := &mockLogger{}

	useCase := NewCreateRequestUseCase(mockRepo, mockNotifier, mockLog)
	result, err := useCase.Execute(context.Background(), validCreateCommand())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(1), result.RequestID)
	assert.True(t, result.NotificationFailed)
}

func TestCreateRequestUseCase_Execute_NoNotifierConfigured(t *testing.T) {
	mockRepo := &mockRequestRepository{
		SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
			return req.SetID(1)
		},
	}
	mockLog := &mockLogger{}

	useCase := NewCreateRequestUseCase(mockRepo, nil, mockLog)
	result, err := useCase.Execute(context.Background(), validCreateCommand())

	require.NoError(t, err)
	require.NotNil(t, result)
	// Disabled notifications are not a delivery failure; the caller gets the
	// plain success outcome.
	assert.False(t, result.NotificationFailed)
}

func TestCreateRequestUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockRequestRepository{
		SaveFunc: func(ctx context.Context, req *request.ServiceRequest) error {
			return errors.New("database is locked")
		},
	}
	mockNotifier := &mockNotificationService{}
	mockLog := &mockLogger{}

	useCase := NewCreateRequestUseCase(mockRepo, mockNotifier, mockLog)
	result, err := useCase.Execute(context.Background(), validCreateCommand())

	require.Error(t, err)
	assert.Nil(t, result)
	// A failed insert must not notify anyone.
	assert.Empty(t, mockNotifier.Sent)
}
