package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberflow/barberflow-api/internal/httperr"
	"github.com/barberflow/barberflow-api/internal/models"
)

func TestParseTarget(t *testing.T) {
	status, err := ParseTarget("completed")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, status)

	status, err = ParseTarget("cancelled")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, status)

	_, err = ParseTarget("confirmed")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = ParseTarget("scheduled")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = ParseTarget("")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCanComplete(t *testing.T) {
	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.True(t, httperr.IsBusiness(CanComplete(StatusCompleted), "invalid_state"))
	assert.True(t, httperr.IsBusiness(CanComplete(StatusCancelled), "invalid_state"))
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.True(t, httperr.IsBusiness(CanCancel(StatusCompleted), "invalid_state"))
	assert.True(t, httperr.IsBusiness(CanCancel(StatusCancelled), "invalid_state"))
}

func TestComplete(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)

	// Completed is terminal: a second completion never succeeds.
	err := Complete(ap, now.Add(time.Hour))
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestCancel(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)

	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelAfterComplete(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}
	err := Cancel(ap, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Nil(t, ap.CancelledAt)
}
