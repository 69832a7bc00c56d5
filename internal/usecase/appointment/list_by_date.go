package appointment

import (
	"context"
	"time"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	organizationID uint,
	dateStr string,
) ([]models.Appointment, error) {

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start := date
	end := start.AddDate(0, 0, 1)

	return uc.repo.ListAppointmentsForDay(ctx, organizationID, start, end)
}
