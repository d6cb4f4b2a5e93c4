package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warsztat/internal/domain/request"
	"warsztat/internal/infrastructure/persistence/models"
)

func TestRequestMapper_RoundTrip(t *testing.T) {
	mapper := NewRequestMapper()

	login := "jkowalski"
	createdAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	original, err := request.ReconstructServiceRequest(
		42, createdAt,
		"Jan", "Kowalski", &login,
		"+48 601 234 567", "2026-03-20 10:00", "Wymiana rozrządu",
	)
	require.NoError(t, err)

	model := mapper.ToModel(original)
	assert.Equal(t, uint(42), model.ID)
	assert.Equal(t, createdAt, model.CreatedAt)
	require.NotNil(t, model.Login)
	assert.Equal(t, login, *model.Login)

	restored, err := mapper.ToDomain(model)
	require.NoError(t, err)

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.CreatedAt(), restored.CreatedAt())
	assert.Equal(t, original.FirstName(), restored.FirstName())
	assert.Equal(t, original.LastName(), restored.LastName())
	assert.Equal(t, original.OwnerLogin(), restored.OwnerLogin())
	assert.Equal(t, original.Phone(), restored.Phone())
	assert.Equal(t, original.Slot(), restored.Slot())
	assert.Equal(t, original.Subject(), restored.Subject())
}

func TestRequestMapper_NilOwnerLogin(t *testing.T) {
	mapper := NewRequestMapper()

	original, err := request.ReconstructServiceRequest(
		7, time.Now(),
		"Anna", "Nowak", nil,
		"500100200", "2026-04-02 14:00", "Hamulce piszczą",
	)
	require.NoError(t, err)

	model := mapper.ToModel(original)
	assert.Nil(t, model.Login)

	restored, err := mapper.ToDomain(model)
	require.NoError(t, err)
	assert.Nil(t, restored.OwnerLogin())
}

func TestRequestMapper_ToDomainInvalidModel(t *testing.T) {
	mapper := NewRequestMapper()

	_, err := mapper.ToDomain(&models.ServiceRequestModel{
		ID:        0,
		FirstName: "Jan",
		LastName:  "Kowalski",
		Phone:     "600700800",
		Slot:      "2026-04-02 14:00",
		Subject:   "Przegląd",
	})
	assert.Error(t, err)
}

func TestRequestMapper_ArchivedRoundTrip(t *testing.T) {
	mapper := NewRequestMapper()

	login := "anowak"
	createdAt := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	archivedAt := time.Date(2026, 2, 10, 16, 45, 0, 0, time.UTC)

	original, err := request.ReconstructArchivedRequest(
		3, createdAt,
		"Anna", "Nowak", &login,
		"510600700", "2026-02-05 09:00", "Klimatyzacja",
		archivedAt,
	)
	require.NoError(t, err)

	model := mapper.ArchivedToModel(original)
	assert.Equal(t, createdAt, model.CreatedAt)
	assert.Equal(t, archivedAt, model.ArchivedAt)

	restored, err := mapper.ArchivedToDomain(model)
	require.NoError(t, err)

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.CreatedAt(), restored.CreatedAt())
	assert.Equal(t, original.ArchivedAt(), restored.ArchivedAt())
	assert.Equal(t, original.OwnerLogin(), restored.OwnerLogin())
	assert.Equal(t, original.Subject(), restored.Subject())
}

func TestRequestMapper_ArchivePreservesCreatedAt(t *testing.T) {
	mapper := NewRequestMapper()

	createdAt := time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC)
	active, err := request.ReconstructServiceRequest(
		9, createdAt,
		"Piotr", "Wiśniewski", nil,
		"700800900", "2026-01-20 12:00", "Wymiana oleju",
	)
	require.NoError(t, err)

	archived, err := request.NewArchivedFromRequest(active)
	require.NoError(t, err)

	model := mapper.ArchivedToModel(archived)
	assert.Equal(t, createdAt, model.CreatedAt)
	assert.False(t, model.ArchivedAt.IsZero())
}
