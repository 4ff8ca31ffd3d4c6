package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberpro/barberpro-api/internal/httperr"
	"github.com/barberpro/barberpro-api/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "rejected"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(st))
	}

	_, err := ParseStatus("scheduled")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestStatus_Blocks(t *testing.T) {
	assert.True(t, StatusPending.Blocks())
	assert.True(t, StatusConfirmed.Blocks())
	assert.True(t, StatusCompleted.Blocks())
	assert.False(t, StatusRejected.Blocks())
}

func TestApplyStatus_CompletesOnce(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	completedNow := ApplyStatus(ap, StatusCompleted, now)
	require.True(t, completedNow)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)

	// completed → pending → completed não conta de novo
	ApplyStatus(ap, StatusPending, now.Add(time.Hour))
	completedAgain := ApplyStatus(ap, StatusCompleted, now.Add(2*time.Hour))
	assert.False(t, completedAgain)
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestApplyStatus_NonCompleting(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}

	completedNow := ApplyStatus(ap, StatusConfirmed, time.Now())
	assert.False(t, completedNow)
	assert.Nil(t, ap.CompletedAt)
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}
