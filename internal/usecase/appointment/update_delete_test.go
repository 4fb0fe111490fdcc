package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestUpdateAppointment_RequiresStatus(t *testing.T) {
	in := validInput()
	in.Status = ""

	err := NewUpdateAppointment(&fakeRepo{}, nil, nil, testClinic(), nil).Execute(context.Background(), 5, in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, domain.CodeMissingField))
}

func TestUpdateAppointment_ExcludesItselfFromConflicts(t *testing.T) {
	in := validInput()
	in.Status = "Completed"
	in.ClientID = uintPtr(7)
	in.Notes = strPtr("  retorno  ")

	var updated *models.Appointment
	rec := &recordingAudit{}
	repo := &fakeRepo{
		lockFn: rowExists,
		findConflictsFn: func(ctx context.Context, q domain.SlotQuery) ([]models.Appointment, error) {
			require.NotNil(t, q.ExcludeID)
			assert.Equal(t, uint(5), *q.ExcludeID)
			return nil, nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) (bool, error) {
			updated = ap
			return true, nil
		},
	}

	err := NewUpdateAppointment(repo, rec, nil, testClinic(), nil).Execute(context.Background(), 5, in)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, uint(5), updated.ID)
	assert.Equal(t, "Completed", updated.Status)
	assert.Equal(t, "retorno", *updated.Notes)
	assert.Equal(t, []string{audit.ActionAppointmentUpdated}, rec.actions())
}

func TestUpdateAppointment_MissingRow(t *testing.T) {
	in := validInput()
	in.Status = "Confirmed"
	in.ClientID = uintPtr(7)

	// No conflict lookup or write is configured: a missing row must stop
	// before either runs, even when the target slot is taken.
	repo := &fakeRepo{
		lockFn: func(ctx context.Context, id uint) (bool, error) {
			assert.Equal(t, uint(999), id)
			return false, nil
		},
	}

	err := NewUpdateAppointment(repo, nil, nil, testClinic(), nil).Execute(context.Background(), 999, in)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestUpdateAppointment_RowGoneBeforeWrite(t *testing.T) {
	in := validInput()
	in.Status = "Confirmed"
	in.ClientID = uintPtr(7)

	repo := &fakeRepo{
		lockFn: rowExists,
		findConflictsFn: func(ctx context.Context, q domain.SlotQuery) ([]models.Appointment, error) {
			return nil, nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) (bool, error) {
			return false, nil
		},
	}

	err := NewUpdateAppointment(repo, nil, nil, testClinic(), nil).Execute(context.Background(), 999, in)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateAppointment_ConflictBlocksWrite(t *testing.T) {
	in := validInput()
	in.Status = "Pending"
	in.ClientID = uintPtr(7)

	repo := &fakeRepo{
		lockFn: rowExists,
		findConflictsFn: func(ctx context.Context, q domain.SlotQuery) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: 8, PatientName: "Outro", ProfessionalID: 2, Status: "Confirmed",
					Datetime: time.Date(2025, 3, 10, 9, 0, 0, 0, brt)},
			}, nil
		},
	}

	err := NewUpdateAppointment(repo, nil, nil, testClinic(), nil).Execute(context.Background(), 5, in)
	assert.ErrorIs(t, err, domain.ErrProfessionalAlreadyBooked)
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		rec := &recordingAudit{}
		repo := &fakeRepo{
			deleteFn: func(ctx context.Context, id uint) (bool, error) {
				assert.Equal(t, uint(3), id)
				return true, nil
			},
		}

		err := NewDeleteAppointment(repo, rec, nil).Execute(context.Background(), uintPtr(1), 3)
		require.NoError(t, err)
		assert.Equal(t, []string{audit.ActionAppointmentDeleted}, rec.actions())
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeRepo{
			deleteFn: func(ctx context.Context, id uint) (bool, error) {
				return false, nil
			},
		}

		err := NewDeleteAppointment(repo, nil, nil).Execute(context.Background(), nil, 3)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
