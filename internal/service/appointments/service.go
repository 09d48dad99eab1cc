package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи компании на дату или за период
//
// Примеры использования:
// - Записи на дату: Date = "2025-10-15"
// - Записи за период: From и To включительно
// - Все записи компании: без дат, постранично
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for company=%d, date=%v, from=%v, to=%v",
		req.CompanyID, derefDate(req.Date), derefDate(req.From), derefDate(req.To))

	if err := validateListRequest(req); err != nil {
		s.logger.Warn("List: validation failed: %v", err)
		return nil, err
	}

	appointments, err := s.appointmentRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for company=%d", len(appointments), req.CompanyID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel удаляет запись. Возвращает false, если записи нет.
// Повторная отмена той же записи возвращает false.
func (s *Service) Cancel(ctx context.Context, id int64) (bool, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	if _, err := s.appointmentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return false, nil
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return false, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		// Запись могла быть удалена параллельным запросом между GetByID и Delete
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d already deleted", id)
			return false, nil
		}
		s.logger.Error("Cancel: failed to delete appointment id=%d: %v", id, err)
		return false, fmt.Errorf("%w: Cancel - failed to delete: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return true, nil
}

// validateListRequest проверяет даты фильтра
func validateListRequest(req *models.ListAppointmentsRequest) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	for _, d := range []*types.Date{req.Date, req.From, req.To} {
		if d == nil {
			continue
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	if req.Date == nil && req.From != nil && req.To != nil && req.From.After(*req.To) {
		return fmt.Errorf("%w: from %s is after to %s", ErrInvalidDateRange, *req.From, *req.To)
	}

	return nil
}

func derefDate(d *types.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}
