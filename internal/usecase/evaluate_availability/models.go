package evaluate_availability

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request предлагаемый слот
type Request struct {
	CompanyID   int64
	ServiceName string
	Date        types.Date
	StartTime   types.TimeString
}

// Result вердикт и данные, найденные по ходу проверки
type Result struct {
	Verdict  domain.Verdict
	StartsAt time.Time

	// Service заполняется, если услуга найдена (вердикт Accepted или RejectedOverlap).
	// Оркестратор записи использует её, не запрашивая услугу повторно.
	Service *domain.Service
}
