package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис для работы с календарем компании: рабочими часами и нерабочими днями
type Service struct {
	calendarRepo CalendarRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(calendarRepo CalendarRepository, logger Logger) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// CreateBusinessHours задает рабочие часы на день недели.
// На один день недели допускается одна запись.
func (s *Service) CreateBusinessHours(ctx context.Context, req *models.CreateBusinessHoursRequest) (*models.BusinessHoursResponse, error) {
	s.logger.Info("CreateBusinessHours: company=%d, weekday=%d, %s-%s",
		req.CompanyID, req.DayOfWeek, req.OpensAt, req.ClosesAt)

	if err := validateBusinessHours(req); err != nil {
		s.logger.Warn("CreateBusinessHours: validation failed: %v", err)
		return nil, err
	}

	hours, err := s.calendarRepo.CreateBusinessHours(ctx, &domain.BusinessHours{
		CompanyID: req.CompanyID,
		DayOfWeek: req.DayOfWeek,
		OpensAt:   req.OpensAt,
		ClosesAt:  req.ClosesAt,
	})
	if err != nil {
		return nil, s.translateCreateError("CreateBusinessHours", req.CompanyID, err)
	}

	s.logger.Info("CreateBusinessHours: successfully created id=%d", hours.ID)
	return models.FromDomainBusinessHours(hours), nil
}

// ListBusinessHours возвращает рабочие часы компании по дням недели
func (s *Service) ListBusinessHours(ctx context.Context, companyID int64) (*models.BusinessHoursListResponse, error) {
	s.logger.Info("ListBusinessHours: fetching for company=%d", companyID)

	hours, err := s.calendarRepo.ListBusinessHours(ctx, companyID)
	if err != nil {
		s.logger.Error("ListBusinessHours: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: ListBusinessHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusinessHoursList(hours), nil
}

// CreateClosure добавляет нерабочий день. Повтор на ту же дату возвращает ErrAlreadyExists.
func (s *Service) CreateClosure(ctx context.Context, req *models.CreateClosureRequest) (*models.ClosureResponse, error) {
	s.logger.Info("CreateClosure: company=%d, date=%s", req.CompanyID, req.ClosureDate)

	if req.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}
	if err := req.ClosureDate.Validate(); err != nil {
		s.logger.Warn("CreateClosure: invalid date %q: %v", req.ClosureDate, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	closure, err := s.calendarRepo.CreateClosure(ctx, &domain.Closure{
		CompanyID:   req.CompanyID,
		ClosureDate: req.ClosureDate,
		Reason:      req.Reason,
	})
	if err != nil {
		return nil, s.translateCreateError("CreateClosure", req.CompanyID, err)
	}

	s.logger.Info("CreateClosure: successfully created id=%d", closure.ID)
	return models.FromDomainClosure(closure), nil
}

// ListClosures возвращает страницу нерабочих дней компании
func (s *Service) ListClosures(ctx context.Context, companyID int64, page domain.Page) (*models.ClosureListResponse, error) {
	page = page.Normalize()
	s.logger.Info("ListClosures: fetching for company=%d, offset=%d, limit=%d", companyID, page.Offset, page.Limit)

	closures, err := s.calendarRepo.ListClosures(ctx, companyID, page)
	if err != nil {
		s.logger.Error("ListClosures: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: ListClosures - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClosureList(closures), nil
}

// DeleteClosure удаляет нерабочий день на дату
func (s *Service) DeleteClosure(ctx context.Context, companyID int64, date types.Date) error {
	s.logger.Info("DeleteClosure: company=%d, date=%s", companyID, date)

	if err := date.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.calendarRepo.DeleteClosure(ctx, companyID, date); err != nil {
		if errors.Is(err, calendarRepo.ErrClosureNotFound) {
			s.logger.Warn("DeleteClosure: closure for company=%d on %s not found", companyID, date)
			return ErrClosureNotFound
		}
		s.logger.Error("DeleteClosure: repository error: %v", err)
		return fmt.Errorf("%w: DeleteClosure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteClosure: successfully deleted closure for company=%d on %s", companyID, date)
	return nil
}

func (s *Service) translateCreateError(op string, companyID int64, err error) error {
	switch {
	case errors.Is(err, calendarRepo.ErrAlreadyExists):
		s.logger.Warn("%s: entry already exists for company=%d", op, companyID)
		return ErrAlreadyExists
	case errors.Is(err, calendarRepo.ErrInvalidReference):
		s.logger.Warn("%s: company id=%d not found", op, companyID)
		return ErrCompanyNotFound
	default:
		s.logger.Error("%s: repository error for company=%d: %v", op, companyID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// validateBusinessHours проверяет день недели и окно времени
func validateBusinessHours(req *models.CreateBusinessHoursRequest) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.DayOfWeek < domain.MinDayOfWeek || req.DayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be between %d and %d", ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	if err := req.OpensAt.Validate(); err != nil {
		return fmt.Errorf("%w: opensAt: %w", ErrInvalidInput, err)
	}
	if err := req.ClosesAt.Validate(); err != nil {
		return fmt.Errorf("%w: closesAt: %w", ErrInvalidInput, err)
	}

	if !req.ClosesAt.IsAfter(req.OpensAt) {
		return fmt.Errorf("%w: closesAt %s must be after opensAt %s", ErrInvalidTimeRange, req.ClosesAt, req.OpensAt)
	}

	return nil
}
