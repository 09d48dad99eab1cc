package evaluate_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/calendar"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
)

// UseCase движок доступности: решает, можно ли записаться на слот
type UseCase struct {
	calendarRepo    CalendarRepository
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	recorder        VerdictRecorder
	logger          Logger
}

// NewUseCase создает движок доступности. recorder может быть nil.
func NewUseCase(
	calendarRepo CalendarRepository,
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	recorder VerdictRecorder,
	logger Logger,
) *UseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &UseCase{
		calendarRepo:    calendarRepo,
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		recorder:        recorder,
		logger:          logger,
	}
}

// Execute проверяет слот. Правила применяются строго по порядку, первое нарушение завершает проверку:
// нерабочий день, рабочие часы дня недели, существование услуги, пересечение с записями той же услуги.
// Ошибка возвращается только для некорректного ввода и сбоев хранилища; отказ это вердикт, не ошибка.
// Все чтения идут через контекст, поэтому внутри транзакции оркестратора видны её данные.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EvaluateAvailability: validation failed: %v", err)
		return nil, err
	}

	result, err := uc.evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	uc.recorder.RecordVerdict(result.Verdict.String())
	uc.logger.Info("EvaluateAvailability: company=%d, service=%q, date=%s, time=%s, verdict=%s",
		req.CompanyID, req.ServiceName, req.Date, req.StartTime, result.Verdict)

	return result, nil
}

func (uc *UseCase) evaluate(ctx context.Context, req *Request) (*Result, error) {
	result := &Result{StartsAt: domain.CombineDateTime(req.Date, req.StartTime)}

	// 1. Нерабочий день
	closure, err := uc.calendarRepo.GetClosureForDate(ctx, req.CompanyID, req.Date)
	if err != nil && !errors.Is(err, calendarRepo.ErrClosureNotFound) {
		uc.logger.Error("EvaluateAvailability: failed to get closure: company=%d, date=%s: %v", req.CompanyID, req.Date, err)
		return nil, fmt.Errorf("%w: failed to get closure: %v", ErrInternal, err)
	}
	if closure != nil {
		result.Verdict = domain.VerdictRejectedClosedDay
		return result, nil
	}

	// 2. Рабочие часы на день недели (0 = понедельник), границы включительно
	hours, err := uc.calendarRepo.GetBusinessHoursForWeekday(ctx, req.CompanyID, req.Date.Weekday())
	if err != nil {
		if errors.Is(err, calendarRepo.ErrBusinessHoursNotFound) {
			result.Verdict = domain.VerdictRejectedNoBusinessHours
			return result, nil
		}
		uc.logger.Error("EvaluateAvailability: failed to get business hours: company=%d, weekday=%d: %v",
			req.CompanyID, req.Date.Weekday(), err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	if !hours.Contains(req.StartTime) {
		result.Verdict = domain.VerdictRejectedOutsideBusinessHours
		return result, nil
	}

	// 3. Услуга компании по имени
	service, err := uc.catalogRepo.GetByName(ctx, req.CompanyID, req.ServiceName)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			result.Verdict = domain.VerdictRejectedUnknownService
			return result, nil
		}
		uc.logger.Error("EvaluateAvailability: failed to get service %q: %v", req.ServiceName, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	result.Service = service

	// 4. Пересечение с записями этой же услуги в эту дату
	existing, err := uc.appointmentRepo.ListForServiceOnDate(ctx, req.CompanyID, service.ID, req.Date)
	if err != nil {
		uc.logger.Error("EvaluateAvailability: failed to get appointments: company=%d, service=%d, date=%s: %v",
			req.CompanyID, service.ID, req.Date, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	if domain.ConflictsWithAny(req.StartTime, service.DurationMinutes, existing) {
		result.Verdict = domain.VerdictRejectedOverlap
		return result, nil
	}

	result.Verdict = domain.VerdictAccepted
	return result, nil
}
