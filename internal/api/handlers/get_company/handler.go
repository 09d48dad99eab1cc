package get_company

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgNotFound         = "компания не найдена"
)

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

// Handle GET /api/v1/companies/{companyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{id} - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	company, err := h.service.GetByID(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, companies.ErrCompanyNotFound) {
			h.logger.Warn("GET /companies/{id} - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /companies/{id} - Failed to get company: company_id=%d, error=%v", companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, company)
}
