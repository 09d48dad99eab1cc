package check_availability

import (
	"context"

	evaluateAvailability "github.com/m04kA/SMC-AppointmentService/internal/usecase/evaluate_availability"
)

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *evaluateAvailability.Request) (*evaluateAvailability.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
