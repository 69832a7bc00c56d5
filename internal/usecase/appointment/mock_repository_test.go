package appointment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/barberflow/barberflow-api/internal/models"
)

// MockRepository is a testify mock of the appointment domain repository.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCustomer(ctx context.Context, organizationID, customerID uint) (*models.Customer, error) {
	args := m.Called(ctx, organizationID, customerID)
	if customer := args.Get(0); customer != nil {
		return customer.(*models.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetService(ctx context.Context, organizationID, serviceID uint) (*models.Service, error) {
	args := m.Called(ctx, organizationID, serviceID)
	if service := args.Get(0); service != nil {
		return service.(*models.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetProfessional(ctx context.Context, organizationID, professionalID uint) (*models.Professional, error) {
	args := m.Called(ctx, organizationID, professionalID)
	if professional := args.Get(0); professional != nil {
		return professional.(*models.Professional), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) ListAppointmentsForDay(ctx context.Context, organizationID uint, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, organizationID, start, end)
	if apps := args.Get(0); apps != nil {
		return apps.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetAppointment(ctx context.Context, organizationID, appointmentID uint) (*models.Appointment, error) {
	args := m.Called(ctx, organizationID, appointmentID)
	if ap := args.Get(0); ap != nil {
		return ap.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) CompleteAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}
