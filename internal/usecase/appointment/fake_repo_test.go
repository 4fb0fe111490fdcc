package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type fakeRepo struct {
	withinTxFn        func(ctx context.Context, fn func(ctx context.Context, tx domain.Repository) error) error
	findClientFn      func(ctx context.Context, name string) (*uint, error)
	findConflictsFn   func(ctx context.Context, q domain.SlotQuery) ([]models.Appointment, error)
	lockFn            func(ctx context.Context, id uint) (bool, error)
	createFn          func(ctx context.Context, ap *models.Appointment) error
	updateFn          func(ctx context.Context, ap *models.Appointment) (bool, error)
	deleteFn          func(ctx context.Context, id uint) (bool, error)
	getFn             func(ctx context.Context, id uint) (*models.Appointment, error)
	listPeriodFn      func(ctx context.Context, start, end time.Time, limit int) ([]models.Appointment, error)
	listRecentFn      func(ctx context.Context, limit int) ([]models.Appointment, error)
	countActiveFn     func(ctx context.Context, start, end time.Time) (int64, error)
	countProceduresFn func(ctx context.Context, start, end time.Time, limit int) ([]domain.ProcedureCount, error)
}

// WithinTransaction runs fn against the same fake unless a custom hook is set.
func (f *fakeRepo) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx domain.Repository) error) error {
	if f.withinTxFn != nil {
		return f.withinTxFn(ctx, fn)
	}
	return fn(ctx, f)
}

func (f *fakeRepo) FindClientIDByName(ctx context.Context, name string) (*uint, error) {
	if f.findClientFn == nil {
		panic("FindClientIDByName not configured")
	}
	return f.findClientFn(ctx, name)
}

func (f *fakeRepo) FindSlotConflicts(ctx context.Context, q domain.SlotQuery) ([]models.Appointment, error) {
	if f.findConflictsFn == nil {
		panic("FindSlotConflicts not configured")
	}
	return f.findConflictsFn(ctx, q)
}

func (f *fakeRepo) LockAppointment(ctx context.Context, id uint) (bool, error) {
	if f.lockFn == nil {
		panic("LockAppointment not configured")
	}
	return f.lockFn(ctx, id)
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createFn == nil {
		panic("CreateAppointment not configured")
	}
	return f.createFn(ctx, ap)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) (bool, error) {
	if f.updateFn == nil {
		panic("UpdateAppointment not configured")
	}
	return f.updateFn(ctx, ap)
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, id uint) (bool, error) {
	if f.deleteFn == nil {
		panic("DeleteAppointment not configured")
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.getFn == nil {
		panic("GetAppointment not configured")
	}
	return f.getFn(ctx, id)
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time, limit int) ([]models.Appointment, error) {
	if f.listPeriodFn == nil {
		panic("ListAppointmentsForPeriod not configured")
	}
	return f.listPeriodFn(ctx, start, end, limit)
}

func (f *fakeRepo) ListRecentAppointments(ctx context.Context, limit int) ([]models.Appointment, error) {
	if f.listRecentFn == nil {
		panic("ListRecentAppointments not configured")
	}
	return f.listRecentFn(ctx, limit)
}

func (f *fakeRepo) CountActiveForPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	if f.countActiveFn == nil {
		panic("CountActiveForPeriod not configured")
	}
	return f.countActiveFn(ctx, start, end)
}

func (f *fakeRepo) CountCompletedProcedures(ctx context.Context, start, end time.Time, limit int) ([]domain.ProcedureCount, error) {
	if f.countProceduresFn == nil {
		panic("CountCompletedProcedures not configured")
	}
	return f.countProceduresFn(ctx, start, end, limit)
}

type recordingAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAudit) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

func uintPtr(v uint) *uint { return &v }

func strPtr(v string) *string { return &v }

func rowExists(ctx context.Context, id uint) (bool, error) { return true, nil }
