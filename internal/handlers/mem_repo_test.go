package handlers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// memRepo is an in-memory store with the same FK behavior as Postgres.
type memRepo struct {
	mu            sync.Mutex
	nextID        uint
	appointments  map[uint]models.Appointment
	professionals map[uint]models.Professional
	clients       map[uint]models.Client
}

func newMemRepo() *memRepo {
	return &memRepo{
		nextID:       1,
		appointments: map[uint]models.Appointment{},
		professionals: map[uint]models.Professional{
			1: {ID: 1, Name: "Dra. Lima"},
			2: {ID: 2, Name: "Dr. Costa"},
		},
		clients: map[uint]models.Client{
			7: {ID: 7, Name: "Ana Souza"},
		},
	}
}

func (r *memRepo) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx domain.Repository) error) error {
	return fn(ctx, r)
}

func (r *memRepo) FindClientIDByName(ctx context.Context, name string) (*uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.clients {
		if strings.EqualFold(c.Name, name) {
			id := id
			return &id, nil
		}
	}
	return nil, nil
}

func (r *memRepo) FindSlotConflicts(ctx context.Context, q domain.SlotQuery) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, ap := range r.appointments {
		if q.ExcludeID != nil && ap.ID == *q.ExcludeID {
			continue
		}
		if !ap.Datetime.Equal(q.At) || ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if ap.PatientName == q.PatientName || ap.ProfessionalID == q.ProfessionalID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *memRepo) checkRefs(ap *models.Appointment) error {
	if _, ok := r.professionals[ap.ProfessionalID]; !ok {
		return httperr.Reference(domain.CodeProfessionalNotFound, "Profissional não encontrado.")
	}
	if ap.ClientID != nil {
		if _, ok := r.clients[*ap.ClientID]; !ok {
			return httperr.Reference(domain.CodeClientNotFound, "Cliente não encontrado.")
		}
	}
	return nil
}

func (r *memRepo) LockAppointment(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.appointments[id]
	return ok, nil
}

func (r *memRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkRefs(ap); err != nil {
		return err
	}
	ap.ID = r.nextID
	r.nextID++
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = ap.CreatedAt
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *memRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.appointments[ap.ID]
	if !ok {
		return false, nil
	}
	if err := r.checkRefs(ap); err != nil {
		return false, err
	}
	ap.CreatedAt = old.CreatedAt
	ap.UpdatedAt = time.Now()
	r.appointments[ap.ID] = *ap
	return true, nil
}

func (r *memRepo) DeleteAppointment(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[id]; !ok {
		return false, nil
	}
	delete(r.appointments, id)
	return true, nil
}

func (r *memRepo) hydrate(ap models.Appointment) models.Appointment {
	if p, ok := r.professionals[ap.ProfessionalID]; ok {
		ap.Professional = &p
	}
	if ap.ClientID != nil {
		if c, ok := r.clients[*ap.ClientID]; ok {
			ap.Client = &c
		}
	}
	return ap
}

func (r *memRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	ap = r.hydrate(ap)
	return &ap, nil
}

func (r *memRepo) sorted(filter func(models.Appointment) bool) []models.Appointment {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter(ap) {
			out = append(out, r.hydrate(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Datetime.Equal(out[j].Datetime) {
			return out[i].ID < out[j].ID
		}
		return out[i].Datetime.Before(out[j].Datetime)
	})
	return out
}

func inPeriod(ap models.Appointment, start, end time.Time) bool {
	return !ap.Datetime.Before(start) && ap.Datetime.Before(end)
}

func (r *memRepo) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time, limit int) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.sorted(func(ap models.Appointment) bool { return inPeriod(ap, start, end) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) ListRecentAppointments(ctx context.Context, limit int) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.sorted(func(models.Appointment) bool { return true })
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memRepo) CountActiveForPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, ap := range r.appointments {
		if inPeriod(ap, start, end) && ap.Status != string(domain.StatusCancelled) {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) CountCompletedProcedures(ctx context.Context, start, end time.Time, limit int) ([]domain.ProcedureCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, ap := range r.appointments {
		if inPeriod(ap, start, end) && ap.Status == string(domain.StatusCompleted) && strings.TrimSpace(ap.AppointmentType) != "" {
			counts[ap.AppointmentType]++
		}
	}
	out := make([]domain.ProcedureCount, 0, len(counts))
	for p, n := range counts {
		out = append(out, domain.ProcedureCount{Procedure: p, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Procedure < out[j].Procedure
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
