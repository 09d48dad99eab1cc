package create_company

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNameRequired       = "название компании обязательно"
	msgAlreadyExists      = "компания с таким названием уже существует"
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

// Handle POST /api/v1/companies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	company, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrInvalidInput):
			h.logger.Warn("POST /companies - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, companies.ErrAlreadyExists):
			h.logger.Warn("POST /companies - Company already exists: name=%q", req.Name)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /companies - Failed to create company: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies - Company created successfully: company_id=%d", company.ID)
	handlers.RespondJSON(w, http.StatusCreated, company)
}
