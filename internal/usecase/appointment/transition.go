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

// TransitionAppointment moves an appointment to a terminal state. Completing
// one also increments the customer's visit counter, atomically with the
// status write.
type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	organizationID uint,
	userID uint,
	appointmentID uint,
	target string,
) (*models.Appointment, error) {

	status, err := domain.ParseTarget(target)
	if err != nil {
		return nil, err
	}

	// Only an empty scoped lookup means "not found"; a real database
	// failure keeps its identity so the transport layer can answer 5xx.
	ap, err := uc.repo.GetAppointment(ctx, organizationID, appointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}

	now := uc.now()

	switch status {
	case domain.StatusCompleted:
		if err := domain.Complete(ap, now); err != nil {
			return nil, err
		}
		if err := uc.repo.CompleteAppointment(ctx, ap); err != nil {
			return nil, err
		}

	case domain.StatusCancelled:
		if err := domain.Cancel(ap, now); err != nil {
			return nil, err
		}
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		OrganizationID: organizationID,
		UserID:         &userID,
		Action:         "appointment_" + string(status),
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
