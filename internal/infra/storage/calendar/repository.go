package calendar

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

var (
	businessHoursColumns = []string{"id", "company_id", "day_of_week", "opens_at", "closes_at", "created_at"}
	closureColumns       = []string{"id", "company_id", "closure_date", "reason", "created_at"}
)

// Repository хранилище календарных правил: рабочие часы и нерабочие дни
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBusinessHours создает рабочие часы на день недели.
// Повторная запись для того же (company_id, day_of_week) возвращает ErrAlreadyExists.
func (r *Repository) CreateBusinessHours(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns("company_id", "day_of_week", "opens_at", "closes_at").
		Values(hours.CompanyID, hours.DayOfWeek, hours.OpensAt, hours.ClosesAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBusinessHours - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&hours.ID, &hours.CreatedAt)
	if err != nil {
		return nil, translateInsertError("CreateBusinessHours", err)
	}

	return hours, nil
}

// GetBusinessHoursForWeekday получает рабочие часы компании на день недели (0 = понедельник)
func (r *Repository) GetBusinessHoursForWeekday(ctx context.Context, companyID int64, weekday int) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(businessHoursColumns...).
		From("business_hours").
		Where(squirrel.Eq{"company_id": companyID, "day_of_week": weekday}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHoursForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.BusinessHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID, &h.CompanyID, &h.DayOfWeek, &h.OpensAt, &h.ClosesAt, &h.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHoursForWeekday - scan business hours: %v", ErrScanRow, err)
	}

	return &h, nil
}

// ListBusinessHours возвращает недельное расписание компании, упорядоченное по дню недели
func (r *Repository) ListBusinessHours(ctx context.Context, companyID int64) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(businessHoursColumns...).
		From("business_hours").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BusinessHours, 0, 7)
	for rows.Next() {
		var h domain.BusinessHours
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.DayOfWeek, &h.OpensAt, &h.ClosesAt, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListBusinessHours - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBusinessHours - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// CreateClosure создает нерабочий день.
// Повторная дата для той же компании возвращает ErrAlreadyExists, исходная запись не меняется.
func (r *Repository) CreateClosure(ctx context.Context, closure *domain.Closure) (*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("closures").
		Columns("company_id", "closure_date", "reason").
		Values(closure.CompanyID, closure.ClosureDate, closure.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateClosure - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&closure.ID, &closure.CreatedAt)
	if err != nil {
		return nil, translateInsertError("CreateClosure", err)
	}

	return closure, nil
}

// GetClosureForDate получает нерабочий день компании на дату
func (r *Repository) GetClosureForDate(ctx context.Context, companyID int64, date types.Date) (*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closures").
		Where(squirrel.Eq{"company_id": companyID, "closure_date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetClosureForDate - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Closure
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.CompanyID, &c.ClosureDate, &c.Reason, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClosureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetClosureForDate - scan closure: %v", ErrScanRow, err)
	}

	return &c, nil
}

// ListClosures возвращает страницу нерабочих дней компании, упорядоченных по дате
func (r *Repository) ListClosures(ctx context.Context, companyID int64, page domain.Page) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	page = page.Normalize()

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closures").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("closure_date ASC").
		Offset(page.Offset).
		Limit(page.Limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListClosures - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClosures - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Closure, 0)
	for rows.Next() {
		var c domain.Closure
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.ClosureDate, &c.Reason, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListClosures - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListClosures - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// DeleteClosure удаляет нерабочий день компании на дату
func (r *Repository) DeleteClosure(ctx context.Context, companyID int64, date types.Date) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closures").
		Where(squirrel.Eq{"company_id": companyID, "closure_date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteClosure - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteClosure - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteClosure - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

func translateInsertError(op string, err error) error {
	switch {
	case pgerrors.IsUniqueViolation(err):
		return ErrAlreadyExists
	case pgerrors.IsForeignKeyViolation(err):
		return ErrInvalidReference
	default:
		return fmt.Errorf("%w: %s - execute insert: %v", ErrExecQuery, op, err)
	}
}
