package appointment

import (
	"context"
	"time"

	"github.com/barberflow/barberflow-api/internal/models"
)

// Repository is the persistence contract for the appointment lifecycle.
// Every lookup takes the caller's organization id so a row belonging to
// another tenant behaves exactly like a missing row.
type Repository interface {
	// -------- Tenant-scoped lookups --------
	GetCustomer(
		ctx context.Context,
		organizationID uint,
		customerID uint,
	) (*models.Customer, error)

	GetService(
		ctx context.Context,
		organizationID uint,
		serviceID uint,
	) (*models.Service, error)

	GetProfessional(
		ctx context.Context,
		organizationID uint,
		professionalID uint,
	) (*models.Professional, error)

	// -------- Appointment (create / list) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		organizationID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		organizationID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CompleteAppointment persists the completed status and increments the
	// linked customer's visit counter in the same transaction.
	CompleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
