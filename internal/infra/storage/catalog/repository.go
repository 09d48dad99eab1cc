package catalog

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
)

var columns = []string{"id", "company_id", "name", "duration_minutes", "price", "created_at"}

// Repository каталог услуг компаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает услугу. Имя уникально в пределах компании.
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("company_id", "name", "duration_minutes", "price").
		Values(service.CompanyID, service.Name, service.DurationMinutes, service.Price).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&service.ID, &service.CreatedAt)
	if err != nil {
		switch {
		case pgerrors.IsUniqueViolation(err):
			return nil, ErrAlreadyExists
		case pgerrors.IsForeignKeyViolation(err):
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return service, nil
}

// GetByID получает услугу компании по ID
func (r *Repository) GetByID(ctx context.Context, companyID, id int64) (*domain.Service, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"company_id": companyID, "id": id})
}

// GetByName получает услугу компании по имени
func (r *Repository) GetByName(ctx context.Context, companyID int64, name string) (*domain.Service, error) {
	return r.getOne(ctx, "GetByName", squirrel.Eq{"company_id": companyID, "name": name})
}

// List возвращает страницу услуг компании, упорядоченных по ID
func (r *Repository) List(ctx context.Context, companyID int64, page domain.Page) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	page = page.Normalize()

	query, args, err := psqlbuilder.Select(columns...).
		From("services").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("id ASC").
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

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.DurationMinutes, &s.Price, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("services").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.DurationMinutes, &s.Price, &s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, op, err)
	}

	return &s, nil
}
