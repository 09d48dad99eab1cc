package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	evaluateAvailability "github.com/m04kA/SMC-AppointmentService/internal/usecase/evaluate_availability"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgMissingService   = "название услуги обязательно"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM:SS"
)

type Handler struct {
	useCase AvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/availability
// Query params: service, date (YYYY-MM-DD), time (HH:MM:SS), все обязательны.
// Отказ движка не является ошибкой запроса: ответ 200 с вердиктом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{id}/availability - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	query := r.URL.Query()
	serviceName := query.Get("service")
	if serviceName == "" {
		h.logger.Warn("GET /companies/{id}/availability - Missing service")
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}

	date, err := types.NewDateFromString(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /companies/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("time"))
	if err != nil {
		h.logger.Warn("GET /companies/{id}/availability - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	req := &evaluateAvailability.Request{
		CompanyID:   companyID,
		ServiceName: serviceName,
		Date:        date,
		StartTime:   startTime,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, evaluateAvailability.ErrInvalidInput) {
			h.logger.Warn("GET /companies/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /companies/{id}/availability - Failed to evaluate: company_id=%d, error=%v", companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies/{id}/availability - company_id=%d, service=%q, %s %s: %s",
		companyID, serviceName, date, startTime, result.Verdict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResult(req, result))
}
