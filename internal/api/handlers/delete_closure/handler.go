package delete_closure

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound         = "нерабочий день не найден"
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

// Handle DELETE /api/v1/companies/{companyId}/closures/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("DELETE /companies/{id}/closures/{date} - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	date, err := types.NewDateFromString(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("DELETE /companies/{id}/closures/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.DeleteClosure(r.Context(), companyID, date); err != nil {
		switch {
		case errors.Is(err, calendar.ErrClosureNotFound):
			h.logger.Warn("DELETE /companies/{id}/closures/{date} - Not found: company_id=%d, date=%s", companyID, date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /companies/{id}/closures/{date} - Failed to delete: company_id=%d, date=%s, error=%v",
				companyID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /companies/{id}/closures/{date} - Deleted successfully: company_id=%d, date=%s", companyID, date)
	handlers.RespondNoContent(w)
}
