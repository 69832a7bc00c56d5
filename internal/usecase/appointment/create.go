package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/barberflow/barberflow-api/internal/audit"
	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	OrganizationID uint
	UserID         uint

	CustomerID     uint
	ServiceID      uint
	ProfessionalID *uint

	DateTime string // RFC 3339
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	when, err := time.Parse(time.RFC3339, in.DateTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_time")
	}

	// Customer and service must belong to the caller's tenant. An empty
	// scoped lookup is a business miss; anything else is a real database
	// error and stays one.
	customer, err := uc.repo.GetCustomer(ctx, in.OrganizationID, in.CustomerID)
	if err != nil {
		return nil, asNotFound(err, "customer_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.OrganizationID, in.ServiceID)
	if err != nil {
		return nil, asNotFound(err, "service_not_found")
	}

	if in.ProfessionalID != nil {
		if _, err := uc.repo.GetProfessional(ctx, in.OrganizationID, *in.ProfessionalID); err != nil {
			return nil, asNotFound(err, "professional_not_found")
		}
	}

	ap := &models.Appointment{
		OrganizationID: in.OrganizationID,
		CustomerID:     customer.ID,
		ServiceID:      service.ID,
		ProfessionalID: in.ProfessionalID,
		DateTime:       when,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: in.OrganizationID,
		UserID:         &in.UserID,
		Action:         "appointment_created",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}

func asNotFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
