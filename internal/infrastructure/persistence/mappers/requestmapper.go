package mappers

import (
	"warsztat/internal/domain/request"
	"warsztat/internal/infrastructure/persistence/models"
)

// RequestMapper converts between service-request domain entities (active and
// archived) and their persistence models.
type RequestMapper interface {
	ToModel(r *request.ServiceRequest) *models.ServiceRequestModel
	ToDomain(model *models.ServiceRequestModel) (*request.ServiceRequest, error)

	ArchivedToModel(a *request.ArchivedRequest) *models.ArchivedRequestModel
	ArchivedToDomain(model *models.ArchivedRequestModel) (*request.ArchivedRequest, error)
}

type RequestMapperImpl struct{}

func NewRequestMapper() RequestMapper {
	return &RequestMapperImpl{}
}

func (m *RequestMapperImpl) ToModel(r *request.ServiceRequest) *models.ServiceRequestModel {
	return &models.ServiceRequestModel{
		ID:        r.ID(),
		CreatedAt: r.CreatedAt(),
		FirstName: r.FirstName(),
		LastName:  r.LastName(),
		Login:     r.OwnerLogin(),
		Phone:     r.Phone(),
		Slot:      r.Slot(),
		Subject:   r.Subject(),
	}
}

func (m *RequestMapperImpl) ToDomain(model *models.ServiceRequestModel) (*request.ServiceRequest, error) {
	return request.ReconstructServiceRequest(
		model.ID,
		model.CreatedAt,
		model.FirstName,
		model.LastName,
		model.Login,
		model.Phone,
		model.Slot,
		model.Subject,
	)
}

func (m *RequestMapperImpl) ArchivedToModel(a *request.ArchivedRequest) *models.ArchivedRequestModel {
	return &models.ArchivedRequestModel{
		ID:         a.ID(),
		CreatedAt:  a.CreatedAt(),
		FirstName:  a.FirstName(),
		LastName:   a.LastName(),
		Login:      a.OwnerLogin(),
		Phone:      a.Phone(),
		Slot:       a.Slot(),
		Subject:    a.Subject(),
		ArchivedAt: a.ArchivedAt(),
	}
}

func (m *RequestMapperImpl) ArchivedToDomain(model *models.ArchivedRequestModel) (*request.ArchivedRequest, error) {
	return request.ReconstructArchivedRequest(
		model.ID,
		model.CreatedAt,
		model.FirstName,
		model.LastName,
		model.Login,
		model.Phone,
		model.Slot,
		model.Subject,
		model.ArchivedAt,
	)
}
