package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestGetAppointment(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)
	repo := &fakeRepo{
		getFn: func(ctx context.Context, id uint) (*models.Appointment, error) {
			if id != 1 {
				return nil, nil
			}
			return &models.Appointment{
				ID:             1,
				PatientName:    "Ana",
				Datetime:       at,
				ProfessionalID: 2,
				Professional:   &models.Professional{ID: 2, Name: "Dra. Lima"},
				Status:         "Pending",
			}, nil
		},
	}
	uc := NewGetAppointment(repo, testClinic())

	got, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", got.Date)
	assert.Equal(t, "09:30", got.Time)
	require.NotNil(t, got.ProfessionalName)
	assert.Equal(t, "Dra. Lima", *got.ProfessionalName)

	_, err = uc.Execute(context.Background(), 2)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListAppointmentsByDate(t *testing.T) {
	t.Run("clinic day window", func(t *testing.T) {
		repo := &fakeRepo{
			listPeriodFn: func(ctx context.Context, start, end time.Time, limit int) ([]models.Appointment, error) {
				assert.True(t, start.Equal(time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)))
				assert.True(t, end.Equal(time.Date(2025, 3, 11, 3, 0, 0, 0, time.UTC)))
				assert.Zero(t, limit)
				email := "ana@example.com"
				return []models.Appointment{
					{ID: 1, PatientName: "Ana", Datetime: start.Add(9 * time.Hour),
						Client: &models.Client{ID: 7, Name: "Ana", Email: &email}},
				}, nil
			},
		}

		out, err := NewListAppointmentsByDate(repo, testClinic()).Execute(context.Background(), "2025-03-10")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "09:00", out[0].Time)
		assert.Equal(t, "ana@example.com", *out[0].ClientEmail)
	})

	t.Run("no date lists recent", func(t *testing.T) {
		repo := &fakeRepo{
			listRecentFn: func(ctx context.Context, limit int) ([]models.Appointment, error) {
				assert.Equal(t, RecentLimit, limit)
				return []models.Appointment{}, nil
			},
		}

		out, err := NewListAppointmentsByDate(repo, testClinic()).Execute(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := NewListAppointmentsByDate(&fakeRepo{}, testClinic()).Execute(context.Background(), "2025-3-1")
		assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidDate))
	})
}

func TestListAppointmentsByMonth_GroupsByClinicDate(t *testing.T) {
	repo := &fakeRepo{
		listPeriodFn: func(ctx context.Context, start, end time.Time, limit int) ([]models.Appointment, error) {
			return []models.Appointment{
				// 01:30 UTC on the 5th is still the 4th in the clinic.
				{ID: 1, PatientName: "A", Datetime: time.Date(2024, 3, 5, 1, 30, 0, 0, time.UTC), Status: "Pending"},
				{ID: 2, PatientName: "B", Datetime: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC), Status: "Pending"},
				{ID: 3, PatientName: "C", Datetime: time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC), Status: "Completed"},
			}, nil
		},
	}

	out, err := NewListAppointmentsByMonth(repo, testClinic()).Execute(context.Background(), 2024, 3)
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.Len(t, out["2024-03-04"], 1)
	assert.Equal(t, "22:30", out["2024-03-04"][0].Time)

	day := out["2024-03-05"]
	require.Len(t, day, 2)
	assert.Equal(t, uint(2), day[0].ID)
	assert.Equal(t, "09:00", day[0].Time)
	assert.Equal(t, uint(3), day[1].ID)
}

func TestListAppointmentsByMonth_RejectsBadPeriod(t *testing.T) {
	uc := NewListAppointmentsByMonth(&fakeRepo{}, testClinic())

	_, err := uc.Execute(context.Background(), 2024, 13)
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidMonth))

	_, err = uc.Execute(context.Background(), 1999, 1)
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidYear))
}

func TestListAppointmentsByRange_Limits(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, DefaultRangeLimit},
		{-1, DefaultRangeLimit},
		{20, 20},
		{10000, MaxRangeLimit},
	}

	for _, tc := range cases {
		var got int
		repo := &fakeRepo{
			listPeriodFn: func(ctx context.Context, start, end time.Time, limit int) ([]models.Appointment, error) {
				got = limit
				return nil, nil
			},
		}
		out, err := NewListAppointmentsByRange(repo, testClinic()).
			Execute(context.Background(), "2025-01-01", "2025-01-31", tc.in)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Equal(t, tc.want, got)
	}
}

func TestListAppointmentsByRange_InvertedRange(t *testing.T) {
	_, err := NewListAppointmentsByRange(&fakeRepo{}, testClinic()).
		Execute(context.Background(), "2025-02-01", "2025-01-01", 10)
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidRange))
}

func TestCountAppointmentsByRange_InclusiveEnd(t *testing.T) {
	repo := &fakeRepo{
		countActiveFn: func(ctx context.Context, start, end time.Time) (int64, error) {
			assert.True(t, end.Equal(time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC)))
			return 4, nil
		},
	}

	n, err := NewCountAppointmentsByRange(repo, testClinic()).Execute(context.Background(), "2025-01-01", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestGetProcedureCounts(t *testing.T) {
	repo := &fakeRepo{
		countProceduresFn: func(ctx context.Context, start, end time.Time, limit int) ([]domain.ProcedureCount, error) {
			assert.Equal(t, 5, limit)
			return nil, nil
		},
	}

	rows, err := NewGetProcedureCounts(repo, testClinic()).Execute(context.Background(), "2024-01-01", "2024-01-31", 5)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
