package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/calendar"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	calendarRepo    CalendarRepository
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarRepo CalendarRepository,
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarRepo:    calendarRepo,
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает времена начала, которые движок доступности принял бы для услуги на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: company=%d, service=%q, date=%s", req.CompanyID, req.ServiceName, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.catalogRepo.GetByName(ctx, req.CompanyID, req.ServiceName)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service %q not found in company=%d", req.ServiceName, req.CompanyID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service %q: %v", req.ServiceName, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	response := &Response{
		Date:            req.Date,
		CompanyID:       req.CompanyID,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		Slots:           []types.TimeString{},
	}

	// 3. Нерабочий день
	closure, err := uc.calendarRepo.GetClosureForDate(ctx, req.CompanyID, req.Date)
	if err != nil && !errors.Is(err, calendarRepo.ErrClosureNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get closure: %v", err)
		return nil, fmt.Errorf("%w: failed to get closure: %v", ErrInternal, err)
	}
	if closure != nil {
		uc.logger.Info("GetAvailableSlots: company=%d is closed on %s", req.CompanyID, req.Date)
		response.Reason = domain.VerdictRejectedClosedDay
		return response, nil
	}

	// 4. Рабочие часы на день недели
	hours, err := uc.calendarRepo.GetBusinessHoursForWeekday(ctx, req.CompanyID, req.Date.Weekday())
	if err != nil {
		if errors.Is(err, calendarRepo.ErrBusinessHoursNotFound) {
			uc.logger.Info("GetAvailableSlots: no business hours for company=%d, weekday=%d", req.CompanyID, req.Date.Weekday())
			response.Reason = domain.VerdictRejectedNoBusinessHours
			return response, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	// 5. Существующие записи на услугу
	existing, err := uc.appointmentRepo.ListForServiceOnDate(ctx, req.CompanyID, service.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Генерация и фильтрация
	slots := generateTimeSlots(hours, service.DurationMinutes)
	slots = filterFreeSlots(slots, service.DurationMinutes, existing)
	slots = filterPastSlots(slots, req.Date, uc.timeProvider.Now())
	response.Slots = slots

	uc.logger.Info("GetAvailableSlots: %d free slots for company=%d, service=%d, date=%s",
		len(slots), req.CompanyID, service.ID, req.Date)

	return response, nil
}
