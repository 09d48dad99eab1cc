package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	evaluateAvailability "github.com/m04kA/SMC-AppointmentService/internal/usecase/evaluate_availability"
)

// UseCase оркестратор записи: проверка доступности и сохранение одной транзакцией
type UseCase struct {
	engine          AvailabilityEngine
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine AvailabilityEngine,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:          engine,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute записывает клиента на слот.
// Проверка и вставка выполняются в одной транзакции под блокировкой (компания, услуга, дата),
// поэтому два параллельных запроса на один слот не могут оба пройти проверку пересечений.
// При отказе возвращается *RejectionError с вердиктом движка, в хранилище ничего не пишется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: company=%d, service=%q, date=%s, time=%s",
		req.CompanyID, req.ServiceName, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	var (
		created *domain.Appointment
		service *domain.Service
	)

	// 2. Блокировка слота, проверка и вставка в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Сериализуем конкурирующие запросы на тот же (компания, услуга, дата)
		if err := uc.appointmentRepo.LockSlot(txCtx, req.CompanyID, req.ServiceName, req.Date); err != nil {
			uc.logger.Error("BookAppointment: failed to lock slot: %v", err)
			return fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
		}

		// 2.2. Вердикт движка доступности
		result, err := uc.engine.Execute(txCtx, &evaluateAvailability.Request{
			CompanyID:   req.CompanyID,
			ServiceName: req.ServiceName,
			Date:        req.Date,
			StartTime:   req.StartTime,
		})
		if err != nil {
			if errors.Is(err, evaluateAvailability.ErrInvalidInput) {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if !result.Verdict.IsAccepted() {
			uc.logger.Warn("BookAppointment: slot rejected: company=%d, service=%q, date=%s, time=%s, verdict=%s",
				req.CompanyID, req.ServiceName, req.Date, req.StartTime, result.Verdict)
			return &RejectionError{Verdict: result.Verdict}
		}

		// 2.3. Услуга уже найдена движком, повторно не запрашиваем
		service = result.Service

		status := req.Status
		if status == "" {
			status = domain.DefaultAppointmentStatus
		}

		appointment := &domain.Appointment{
			CompanyID:          req.CompanyID,
			ServiceID:          service.ID,
			Date:               req.Date,
			StartTime:          req.StartTime,
			CustomerName:       req.CustomerName,
			CustomerPhone:      req.CustomerPhone,
			Status:             status,
			ServiceDescription: req.ServiceDescription,
		}

		// 2.4. Сохраняем запись
		created, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("BookAppointment: slot taken at insert: service=%d, date=%s, time=%s",
					service.ID, req.Date, req.StartTime)
				return &RejectionError{Verdict: domain.VerdictRejectedOverlap}
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", created.ID)

	return &Response{
		ID:                 created.ID,
		CompanyID:          created.CompanyID,
		ServiceID:          created.ServiceID,
		ServiceName:        service.Name,
		DurationMinutes:    service.DurationMinutes,
		Date:               created.Date,
		StartTime:          created.StartTime,
		DateTime:           created.DateTime(),
		CustomerName:       created.CustomerName,
		CustomerPhone:      created.CustomerPhone,
		Status:             created.Status,
		ServiceDescription: created.ServiceDescription,
		CreatedAt:          created.CreatedAt,
	}, nil
}
