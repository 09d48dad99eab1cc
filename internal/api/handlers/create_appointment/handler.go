package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	bookAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM:SS"
	msgInvalidInput       = "название услуги, имя и телефон клиента обязательны"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("POST /companies/{id}/appointments - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(companyID)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/appointments - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if verdict, ok := bookAppointment.VerdictOf(err); ok {
			h.logger.Warn("POST /companies/{id}/appointments - Rejected: company_id=%d, service=%q, %s %s, verdict=%s",
				companyID, req.ServiceName, req.Date, req.StartTime, verdict)
			handlers.RespondError(w, handlers.VerdictStatus(verdict), handlers.VerdictMessage(verdict))
			return
		}

		switch {
		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /companies/{id}/appointments - Failed to book: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{id}/appointments - Appointment created successfully: appointment_id=%d, company_id=%d",
		result.ID, companyID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
