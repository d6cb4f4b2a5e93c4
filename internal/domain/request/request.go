package request

import (
	"fmt"
	"strings"
	"time"
)

// ServiceRequest is an active workshop service request (zgłoszenie) awaiting
// admin action. The owner login is optional so the schema tolerates requests
// whose account was removed.
type ServiceRequest struct {
	id         uint
	createdAt  time.Time
	firstName  string
	lastName   string
	ownerLogin *string
	phone      string
	slot       string
	subject    string
}

func NewServiceRequest(firstName, lastName, phone, slot, subject string, ownerLogin *string) (*ServiceRequest, error) {
	if err := validateFields(firstName, lastName, phone, slot, subject); err != nil {
		return nil, err
	}

	return &ServiceRequest{
		createdAt:  time.Now(),
		firstName:  firstName,
		lastName:   lastName,
		ownerLogin: ownerLogin,
		phone:      phone,
		slot:       slot,
		subject:    subject,
	}, nil
}

func ReconstructServiceRequest(
	id uint,
	createdAt time.Time,
	firstName, lastName string,
	ownerLogin *string,
	phone, slot, subject string,
) (*ServiceRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if err := validateFields(firstName, lastName, phone, slot, subject); err != nil {
		return nil, err
	}

	return &ServiceRequest{
		id:         id,
		createdAt:  createdAt,
		firstName:  firstName,
		lastName:   lastName,
		ownerLogin: ownerLogin,
		phone:      phone,
		slot:       slot,
		subject:    subject,
	}, nil
}

func validateFields(firstName, lastName, phone, slot, subject string) error {
	if strings.TrimSpace(firstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if strings.TrimSpace(slot) == "" {
		return fmt.Errorf("slot is required")
	}
	if strings.TrimSpace(subject) == "" {
		return fmt.Errorf("subject is required")
	}
	return nil
}

func (r *ServiceRequest) ID() uint {
	return r.id
}

func (r *ServiceRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *ServiceRequest) FirstName() string {
	return r.firstName
}

func (r *ServiceRequest) LastName() string {
	return r.lastName
}

func (r *ServiceRequest) OwnerLogin() *string {
	return r.ownerLogin
}

func (r *ServiceRequest) Phone() string {
	return r.phone
}

func (r *ServiceRequest) Slot() string {
	return r.slot
}

func (r *ServiceRequest) Subject() string {
	return r.subject
}

func (r *ServiceRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}
