package request

import (
	"fmt"
	"time"
)

// ArchivedRequest is the permanent record of a closed-out service request.
// It carries its own identity; the source request's id is not preserved.
// Once created it is immutable except for deletion.
type ArchivedRequest struct {
	id         uint
	createdAt  time.Time
	firstName  string
	lastName   string
	ownerLogin *string
	phone      string
	slot       string
	subject    string
	archivedAt time.Time
}

// NewArchivedFromRequest copies an active request into an archive record.
// The original creation timestamp is preserved; archivedAt is stamped now.
func NewArchivedFromRequest(src *ServiceRequest) (*ArchivedRequest, error) {
	if src == nil {
		return nil, fmt.Errorf("source request cannot be nil")
	}

	return &ArchivedRequest{
		createdAt:  src.CreatedAt(),
		firstName:  src.FirstName(),
		lastName:   src.LastName(),
		ownerLogin: src.OwnerLogin(),
		phone:      src.Phone(),
		slot:       src.Slot(),
		subject:    src.Subject(),
		archivedAt: time.Now(),
	}, nil
}

func ReconstructArchivedRequest(
	id uint,
	createdAt time.Time,
	firstName, lastName string,
	ownerLogin *string,
	phone, slot, subject string,
	archivedAt time.Time,
) (*ArchivedRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("archived request ID cannot be zero")
	}
	if err := validateFields(firstName, lastName, phone, slot, subject); err != nil {
		return nil, err
	}

	return &ArchivedRequest{
		id:         id,
		createdAt:  createdAt,
		firstName:  firstName,
		lastName:   lastName,
		ownerLogin: ownerLogin,
		phone:      phone,
		slot:       slot,
		subject:    subject,
		archivedAt: archivedAt,
	}, nil
}

func (a *ArchivedRequest) ID() uint {
	return a.id
}

func (a *ArchivedRequest) CreatedAt() time.Time {
	return a.createdAt
}

func (a *ArchivedRequest) FirstName() string {
	return a.firstName
}

func (a *ArchivedRequest) LastName() string {
	return a.lastName
}

func (a *ArchivedRequest) OwnerLogin() *string {
	return a.ownerLogin
}

func (a *ArchivedRequest) Phone() string {
	return a.phone
}

func (a *ArchivedRequest) Slot() string {
	return a.slot
}

func (a *ArchivedRequest) Subject() string {
	return a.subject
}

func (a *ArchivedRequest) ArchivedAt() time.Time {
	return a.archivedAt
}

func (a *ArchivedRequest) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("archived request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("archived request ID cannot be zero")
	}
	a.id = id
	return nil
}
