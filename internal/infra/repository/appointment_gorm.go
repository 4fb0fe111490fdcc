package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Constraint names created by migrations/000001_init.up.sql.
const (
	constraintClientFK         = "appointments_client_id_fkey"
	constraintProfessionalFK   = "appointments_professional_id_fkey"
	constraintPatientSlot      = "appointments_patient_slot_uniq"
	constraintProfessionalSlot = "appointments_professional_slot_uniq"

	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgNumericOverflow     = "22003"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentGormRepository) WithinTransaction(
	ctx context.Context,
	fn func(ctx context.Context, tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Client directory
// --------------------------------------------------

func (r *AppointmentGormRepository) FindClientIDByName(
	ctx context.Context,
	name string,
) (*uint, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("LOWER(name) = LOWER(?)", name).
		Order("id ASC").
		Limit(1).
		Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("clients: find by name: %w", err)
	}
	if len(clients) == 0 {
		return nil, nil
	}

	id := clients[0].ID
	return &id, nil
}

// --------------------------------------------------
// Appointment (write / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) FindSlotConflicts(
	ctx context.Context,
	q domain.SlotQuery,
) ([]models.Appointment, error) {

	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("datetime = ? AND status <> ?", q.At, string(domain.StatusCancelled)).
		Where("patient_name = ? OR professional_id = ?", q.PatientName, q.ProfessionalID)

	if q.ExcludeID != nil {
		query = query.Where("id <> ?", *q.ExcludeID)
	}

	var apps []models.Appointment
	if err := query.Order("id ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("appointments: find slot conflicts: %w", err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) LockAppointment(
	ctx context.Context,
	id uint,
) (bool, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Pluck("id", &ids).Error; err != nil {
		return false, fmt.Errorf("appointments: lock: %w", err)
	}
	return len(ids) > 0, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error; err != nil {
		return translateWriteError(err, ap, "insert")
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"client_id":        ap.ClientID,
			"patient_name":     ap.PatientName,
			"datetime":         ap.Datetime,
			"appointment_type": ap.AppointmentType,
			"professional_id":  ap.ProfessionalID,
			"status":           ap.Status,
			"notes":            ap.Notes,
			"value":            ap.Value,
			"updated_at":       time.Now().UTC(),
		})
	if res.Error != nil {
		return false, translateWriteError(res.Error, ap, "update")
	}
	return res.RowsAffected > 0, nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) (bool, error) {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("appointments: delete: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Professional").
		Where("id = ?", id).
		First(&ap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("appointments: get: %w", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
	limit int,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Where("datetime >= ? AND datetime < ?", start, end).
		Order("datetime ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var apps []models.Appointment
	if err := q.Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("appointments: list period: %w", err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListRecentAppointments(
	ctx context.Context,
	limit int,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Professional").
		Order("datetime DESC, client_id ASC").
		Limit(limit).
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("appointments: list recent: %w", err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) CountActiveForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"datetime >= ? AND datetime < ? AND status <> ?",
			start,
			end,
			string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("appointments: count period: %w", err)
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountCompletedProcedures(
	ctx context.Context,
	start time.Time,
	end time.Time,
	limit int,
) ([]domain.ProcedureCount, error) {

	var rows []domain.ProcedureCount
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select(`appointment_type AS "procedure", COUNT(*) AS "count"`).
		Where(
			"status = ? AND datetime >= ? AND datetime < ?",
			string(domain.StatusCompleted),
			start,
			end,
		).
		Where("appointment_type IS NOT NULL AND TRIM(appointment_type) <> ''").
		Group("appointment_type").
		Order(`"count" DESC, appointment_type ASC`).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("appointments: procedure counts: %w", err)
	}
	return rows, nil
}

// --------------------------------------------------
// Errors
// --------------------------------------------------

// translateWriteError maps constraint violations raised by Postgres to
// business errors; anything else is wrapped and returned as-is.
func translateWriteError(err error, ap *models.Appointment, op string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("appointments: %s: %w", op, err)
	}

	switch pgErr.Code {
	case pgForeignKeyViolation:
		if pgErr.ConstraintName == constraintClientFK && ap.ClientID != nil {
			return httperr.Reference(
				domain.CodeClientNotFound,
				fmt.Sprintf("Cliente com ID %d não encontrado.", *ap.ClientID),
			)
		}
		if pgErr.ConstraintName == constraintProfessionalFK {
			return httperr.Reference(
				domain.CodeProfessionalNotFound,
				fmt.Sprintf("Profissional com ID %d não encontrado.", ap.ProfessionalID),
			)
		}
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case constraintPatientSlot:
			return domain.ErrPatientAlreadyBooked
		case constraintProfessionalSlot:
			return domain.ErrProfessionalAlreadyBooked
		}
	case pgNumericOverflow:
		return httperr.Validation(domain.CodeInvalidValue, "Valor acima do máximo permitido (99999999,99).")
	}

	return fmt.Errorf("appointments: %s: %w", op, err)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
