package evaluate_availability

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CalendarRepository интерфейс хранилища календарных правил
type CalendarRepository interface {
	GetClosureForDate(ctx context.Context, companyID int64, date types.Date) (*domain.Closure, error)
	GetBusinessHoursForWeekday(ctx context.Context, companyID int64, weekday int) (*domain.BusinessHours, error)
}

// CatalogRepository интерфейс каталога услуг
type CatalogRepository interface {
	GetByName(ctx context.Context, companyID int64, name string) (*domain.Service, error)
}

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	ListForServiceOnDate(ctx context.Context, companyID, serviceID int64, date types.Date) ([]*domain.Appointment, error)
}

// VerdictRecorder получатель статистики по вердиктам (Prometheus)
type VerdictRecorder interface {
	RecordVerdict(verdict string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopRecorder struct{}

func (nopRecorder) RecordVerdict(string) {}
