package create_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar/models"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный день недели или формат времени, ожидается 0-6 и HH:MM:SS"
	msgInvalidTimeRange   = "время закрытия должно быть позже времени открытия"
	msgCompanyNotFound    = "компания не найдена"
	msgAlreadyExists      = "рабочие часы на этот день недели уже заданы"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("POST /companies/{id}/business-hours - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req models.CreateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.CompanyID = companyID

	hours, err := h.service.CreateBusinessHours(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/business-hours - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, calendar.ErrInvalidTimeRange):
			h.logger.Warn("POST /companies/{id}/business-hours - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, calendar.ErrCompanyNotFound):
			h.logger.Warn("POST /companies/{id}/business-hours - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, calendar.ErrAlreadyExists):
			h.logger.Warn("POST /companies/{id}/business-hours - Already exists: company_id=%d, weekday=%d",
				companyID, req.DayOfWeek)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /companies/{id}/business-hours - Failed to create: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{id}/business-hours - Created successfully: id=%d, company_id=%d", hours.ID, companyID)
	handlers.RespondJSON(w, http.StatusCreated, hours)
}
