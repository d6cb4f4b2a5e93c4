package usecases

import (
	"context"

	"warsztat/internal/domain/request"
)

// TransactionManager runs a function inside a single database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationService delivers the new-request notification to the workshop
// inbox. Delivery failures never affect the stored request.
type NotificationService interface {
	SendRequestReceived(req *request.ServiceRequest) error
}
