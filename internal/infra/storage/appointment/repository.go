package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/pgerrors"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var columns = []string{
	"id",
	"company_id",
	"service_id",
	"appointment_date",
	"start_time",
	"customer_name",
	"customer_phone",
	"status",
	"service_description",
	"created_at",
}

// Repository журнал записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись.
// Если в контексте есть транзакция, вставка выполняется в ней.
// Уникальный ключ (service_id, appointment_date, start_time) страхует от двойной записи: ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"company_id",
			"service_id",
			"appointment_date",
			"start_time",
			"customer_name",
			"customer_phone",
			"status",
			"service_description",
		).
		Values(
			appointment.CompanyID,
			appointment.ServiceID,
			appointment.Date,
			appointment.StartTime,
			appointment.CustomerName,
			appointment.CustomerPhone,
			appointment.Status,
			appointment.ServiceDescription,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.ID, &appointment.CreatedAt)
	if err != nil {
		switch {
		case pgerrors.IsUniqueViolation(err):
			return nil, ErrSlotTaken
		case pgerrors.IsForeignKeyViolation(err):
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return appointment, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Appointment
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.CompanyID,
		&a.ServiceID,
		&a.Date,
		&a.StartTime,
		&a.CustomerName,
		&a.CustomerPhone,
		&a.Status,
		&a.ServiceDescription,
		&a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return &a, nil
}

// ListForServiceOnDate возвращает записи на услугу компании в указанную дату по времени начала
func (r *Repository) ListForServiceOnDate(ctx context.Context, companyID, serviceID int64, date types.Date) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("appointments").
		Where(squirrel.Eq{
			"company_id":       companyID,
			"service_id":       serviceID,
			"appointment_date": date,
		}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForServiceOnDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForServiceOnDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// List возвращает записи компании с фильтрацией по услуге и периоду.
//
// Примеры:
//
// 1. Записи на конкретную дату:
//    d := types.MustDate("2025-10-15")
//    filter := domain.AppointmentsFilter{CompanyID: 1, StartDate: &d, EndDate: &d}
//
// 2. Записи на услугу за период:
//    filter := domain.AppointmentsFilter{CompanyID: 1, ServiceID: &serviceID, StartDate: &from, EndDate: &to}
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	page := filter.Page.Normalize()

	selectBuilder := psqlbuilder.Select(columns...).
		From("appointments").
		Where(squirrel.Eq{"company_id": filter.CompanyID})

	if filter.ServiceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}

	query, args, err := selectBuilder.
		OrderBy("appointment_date ASC", "start_time ASC", "id ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Delete физически удаляет запись
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var a domain.Appointment
		err := rows.Scan(
			&a.ID,
			&a.CompanyID,
			&a.ServiceID,
			&a.Date,
			&a.StartTime,
			&a.CustomerName,
			&a.CustomerPhone,
			&a.Status,
			&a.ServiceDescription,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
