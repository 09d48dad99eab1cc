package create_closure

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
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCompanyNotFound    = "компания не найдена"
	msgAlreadyExists      = "нерабочий день на эту дату уже задан"
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

// Handle POST /api/v1/companies/{companyId}/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("POST /companies/{id}/closures - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req models.CreateClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.CompanyID = companyID

	closure, err := h.service.CreateClosure(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/closures - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, calendar.ErrCompanyNotFound):
			h.logger.Warn("POST /companies/{id}/closures - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, calendar.ErrAlreadyExists):
			h.logger.Warn("POST /companies/{id}/closures - Already exists: company_id=%d, date=%s", companyID, req.ClosureDate)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /companies/{id}/closures - Failed to create: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{id}/closures - Created successfully: id=%d, company_id=%d, date=%s",
		closure.ID, companyID, closure.ClosureDate)
	handlers.RespondJSON(w, http.StatusCreated, closure)
}
