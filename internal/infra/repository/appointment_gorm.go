package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/barberflow/barberflow-api/internal/domain/appointment"
	"github.com/barberflow/barberflow-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Tenant-scoped lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetCustomer(
	ctx context.Context,
	organizationID uint,
	customerID uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ? AND active = true", customerID, organizationID).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	organizationID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ? AND active = true", serviceID, organizationID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	organizationID uint,
	professionalID uint,
) (*models.Professional, error) {

	var professional models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ? AND active = true", professionalID, organizationID).
		First(&professional).Error; err != nil {
		return nil, err
	}
	return &professional, nil
}

// --------------------------------------------------
// Appointment (create / list)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	organizationID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Professional").
		Where(
			"organization_id = ? AND date_time >= ? AND date_time < ?",
			organizationID, start, end,
		).
		Order("date_time ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	organizationID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", appointmentID, organizationID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// CompleteAppointment writes the completed status and bumps the customer's
// visit counter in one transaction. The status machine has already rejected
// anything that is not confirmed, so the counter moves at most once per
// appointment.
func (r *AppointmentGormRepository) CompleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}

		return tx.Model(&models.Customer{}).
			Where("id = ? AND organization_id = ?", ap.CustomerID, ap.OrganizationID).
			UpdateColumn("total_visits", gorm.Expr("total_visits + 1")).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
