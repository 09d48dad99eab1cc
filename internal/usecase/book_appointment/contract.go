package book_appointment

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	evaluateAvailability "github.com/m04kA/SMC-AppointmentService/internal/usecase/evaluate_availability"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AvailabilityEngine движок доступности
type AvailabilityEngine interface {
	Execute(ctx context.Context, req *evaluateAvailability.Request) (*evaluateAvailability.Result, error)
}

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	LockSlot(ctx context.Context, companyID int64, serviceName string, date types.Date) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
