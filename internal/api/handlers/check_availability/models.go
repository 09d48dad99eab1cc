package check_availability

import (
	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	evaluateAvailability "github.com/m04kA/SMC-AppointmentService/internal/usecase/evaluate_availability"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const dateTimeLayout = "2006-01-02T15:04:05"

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CompanyID   int64            `json:"companyId"`
	ServiceName string           `json:"serviceName"`
	ServiceID   *int64           `json:"serviceId,omitempty"`
	Date        types.Date       `json:"date"`
	StartTime   types.TimeString `json:"startTime"`
	DateTime    string           `json:"dateTime"`
	Available   bool             `json:"available"`
	Verdict     string           `json:"verdict"`
	Message     string           `json:"message"`
}

// FromUseCaseResult конвертирует результат use case в HTTP response
func FromUseCaseResult(req *evaluateAvailability.Request, result *evaluateAvailability.Result) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		CompanyID:   req.CompanyID,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		StartTime:   req.StartTime,
		DateTime:    result.StartsAt.Format(dateTimeLayout),
		Available:   result.Verdict.IsAccepted(),
		Verdict:     result.Verdict.String(),
		Message:     handlers.VerdictMessage(result.Verdict),
	}

	if result.Service != nil {
		resp.ServiceID = ptr.Ptr(result.Service.ID)
	}

	return resp
}
