package request

import "context"

type Repository interface {
	Save(ctx context.Context, req *ServiceRequest) error
	FindByID(ctx context.Context, id uint) (*ServiceRequest, error)
	// List returns all active requests ordered by creation time descending.
	List(ctx context.Context) ([]*ServiceRequest, error)
	Delete(ctx context.Context, id uint) error
}

type ArchiveRepository interface {
	// InsertFrom stores an archive record. It is only called from inside the
	// archive transaction; it is not an independently exposed operation.
	InsertFrom(ctx context.Context, archived *ArchivedRequest) error
	// List returns all archived requests ordered by archival time descending.
	List(ctx context.Context) ([]*ArchivedRequest, error)
	Delete(ctx context.Context, id uint) error
}
