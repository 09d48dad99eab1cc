package list_companies

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const msgInvalidParams = "некорректные параметры пагинации"

type Handler struct {
	service CompanyService
	logger  Logger
}

func NewHandler(service CompanyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies
// Query params: offset, limit (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.ParsePage(r)
	if err != nil {
		h.logger.Warn("GET /companies - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), page)
	if err != nil {
		h.logger.Error("GET /companies - Failed to list companies: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies - Companies retrieved successfully: count=%d", len(result.Companies))
	handlers.RespondJSON(w, http.StatusOK, result.Companies)
}
