package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/barberflow/barberflow-api/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func professionalRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "organization_id", "name", "active"}).
		AddRow(8, 1, "Marcos", true)
}

func TestReplaceWorkingHoursSwapsFullSet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfessionalGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "professionals" .* FOR UPDATE`).
		WillReturnRows(professionalRow())
	mock.ExpectExec(`DELETE FROM "working_hours" WHERE professional_id = \$1`).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery(`INSERT INTO "working_hours"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21).AddRow(22))
	mock.ExpectCommit()

	err := repo.ReplaceWorkingHours(context.Background(), 1, 8, []models.WorkingHours{
		{ProfessionalID: 8, Weekday: 1, StartTime: "09:00", EndTime: "18:00"},
		{ProfessionalID: 8, Weekday: 2, StartTime: "09:00", EndTime: "18:00"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceWorkingHoursRollsBackWhenInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfessionalGormRepository(db)

	insertErr := errors.New("pq: connection reset by peer")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "professionals" .* FOR UPDATE`).
		WillReturnRows(professionalRow())
	mock.ExpectExec(`DELETE FROM "working_hours" WHERE professional_id = \$1`).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(`INSERT INTO "working_hours"`).
		WillReturnError(insertErr)
	// The delete above must not survive a failed insert: the transaction
	// rolls back and the prior schedule stays intact.
	mock.ExpectRollback()

	err := repo.ReplaceWorkingHours(context.Background(), 1, 8, []models.WorkingHours{
		{ProfessionalID: 8, Weekday: 1, StartTime: "09:00", EndTime: "18:00"},
	})
	assert.ErrorIs(t, err, insertErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceWorkingHoursEmptySetClearsSchedule(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfessionalGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "professionals" .* FOR UPDATE`).
		WillReturnRows(professionalRow())
	mock.ExpectExec(`DELETE FROM "working_hours" WHERE professional_id = \$1`).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	err := repo.ReplaceWorkingHours(context.Background(), 1, 8, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceWorkingHoursCrossTenantProfessional(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfessionalGormRepository(db)

	mock.ExpectBegin()
	// The professional belongs to another organization: the scoped locking
	// read comes back empty and nothing past it runs.
	mock.ExpectQuery(`SELECT \* FROM "professionals" .* FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "name", "active"}))
	mock.ExpectRollback()

	err := repo.ReplaceWorkingHours(context.Background(), 2, 8, []models.WorkingHours{
		{ProfessionalID: 8, Weekday: 1, StartTime: "09:00", EndTime: "18:00"},
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceServiceAssignmentsRejectsForeignService(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfessionalGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "professionals" .* FOR UPDATE`).
		WillReturnRows(professionalRow())
	// One of the two ids belongs to another tenant, so the scoped count
	// inside the transaction comes up short.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.ReplaceServiceAssignments(context.Background(), 1, 8, []models.ProfessionalService{
		{ProfessionalID: 8, ServiceID: 3, Enabled: true},
		{ProfessionalID: 8, ServiceID: 999, Enabled: true},
	})
	assert.ErrorIs(t, err, ErrForeignService)
	// Neither the delete nor the insert ever ran; the prior assignments
	// are untouched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceServiceAssignmentsSwapsFullSet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfessionalGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "professionals" .* FOR UPDATE`).
		WillReturnRows(professionalRow())
	mock.ExpectQuery(`SELECT count\(\*\) FROM "services"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(`DELETE FROM "professional_services" WHERE professional_id = \$1`).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "professional_services"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(31).AddRow(32))
	mock.ExpectCommit()

	err := repo.ReplaceServiceAssignments(context.Background(), 1, 8, []models.ProfessionalService{
		{ProfessionalID: 8, ServiceID: 3, Enabled: true},
		{ProfessionalID: 8, ServiceID: 4, Enabled: true},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
