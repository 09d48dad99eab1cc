package calendar

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CalendarRepository интерфейс хранилища рабочих часов и нерабочих дней
type CalendarRepository interface {
	CreateBusinessHours(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error)
	ListBusinessHours(ctx context.Context, companyID int64) ([]*domain.BusinessHours, error)
	CreateClosure(ctx context.Context, closure *domain.Closure) (*domain.Closure, error)
	ListClosures(ctx context.Context, companyID int64, page domain.Page) ([]*domain.Closure, error)
	DeleteClosure(ctx context.Context, companyID int64, date types.Date) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
