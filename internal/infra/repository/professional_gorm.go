package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barberflow/barberflow-api/internal/models"
)

// ErrForeignService means a replace-all referenced a service id that does not
// belong to the caller's tenant (or was deleted mid-flight).
var ErrForeignService = errors.New("service does not belong to organization")

// ProfessionalGormRepository owns the replace-all saves for a professional's
// schedule and service assignments. Both run delete-then-insert inside one
// transaction holding a row lock on the professional, so two concurrent
// saves for the same professional serialize instead of interleaving.
type ProfessionalGormRepository struct {
	db *gorm.DB
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db}
}

func (r *ProfessionalGormRepository) lockProfessional(
	tx *gorm.DB,
	organizationID uint,
	professionalID uint,
) error {
	var professional models.Professional
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND organization_id = ?", professionalID, organizationID).
		First(&professional).Error
}

// ReplaceWorkingHours swaps the professional's full weekly schedule. Any
// failure rolls the whole replace back; the prior schedule stays intact.
func (r *ProfessionalGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	organizationID uint,
	professionalID uint,
	hours []models.WorkingHours,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockProfessional(tx, organizationID, professionalID); err != nil {
			return err
		}

		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
}

// ReplaceServiceAssignments swaps the professional's full service list with
// the same all-or-nothing semantics as ReplaceWorkingHours. Service ownership
// is verified inside the same transaction, so a service deleted or reassigned
// concurrently cannot slip into the new set.
func (r *ProfessionalGormRepository) ReplaceServiceAssignments(
	ctx context.Context,
	organizationID uint,
	professionalID uint,
	assignments []models.ProfessionalService,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.lockProfessional(tx, organizationID, professionalID); err != nil {
			return err
		}

		if len(assignments) > 0 {
			seen := make(map[uint]struct{}, len(assignments))
			ids := make([]uint, 0, len(assignments))
			for _, a := range assignments {
				if _, ok := seen[a.ServiceID]; ok {
					continue
				}
				seen[a.ServiceID] = struct{}{}
				ids = append(ids, a.ServiceID)
			}

			var count int64
			if err := tx.
				Model(&models.Service{}).
				Where("organization_id = ? AND id IN ?", organizationID, ids).
				Count(&count).Error; err != nil {
				return err
			}
			if count != int64(len(ids)) {
				return ErrForeignService
			}
		}

		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.ProfessionalService{}).Error; err != nil {
			return err
		}

		if len(assignments) == 0 {
			return nil
		}
		return tx.Create(&assignments).Error
	})
}

func (r *ProfessionalGormRepository) ListWorkingHours(
	ctx context.Context,
	organizationID uint,
	professionalID uint,
) ([]models.WorkingHours, error) {

	if err := r.assertOwned(ctx, organizationID, professionalID); err != nil {
		return nil, err
	}

	var hours []models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("weekday ASC").
		Find(&hours).Error
	return hours, err
}

func (r *ProfessionalGormRepository) ListServiceAssignments(
	ctx context.Context,
	organizationID uint,
	professionalID uint,
) ([]models.ProfessionalService, error) {

	if err := r.assertOwned(ctx, organizationID, professionalID); err != nil {
		return nil, err
	}

	var assignments []models.ProfessionalService
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("service_id ASC").
		Find(&assignments).Error
	return assignments, err
}

// assertOwned fails with ErrRecordNotFound when the professional does not
// belong to the caller's tenant.
func (r *ProfessionalGormRepository) assertOwned(
	ctx context.Context,
	organizationID uint,
	professionalID uint,
) error {
	var professional models.Professional
	return r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", professionalID, organizationID).
		First(&professional).Error
}
