package delete_closure

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type CalendarService interface {
	DeleteClosure(ctx context.Context, companyID int64, date types.Date) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
