package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// VerdictStatus HTTP статус для отказа движка доступности
func VerdictStatus(v domain.Verdict) int {
	switch v {
	case domain.VerdictRejectedOverlap:
		return http.StatusConflict
	case domain.VerdictRejectedUnknownService:
		return http.StatusNotFound
	case domain.VerdictAccepted:
		return http.StatusOK
	default:
		return http.StatusBadRequest
	}
}

// VerdictMessage сообщение для клиента по вердикту
func VerdictMessage(v domain.Verdict) string {
	switch v {
	case domain.VerdictAccepted:
		return "слот доступен"
	case domain.VerdictRejectedClosedDay:
		return "компания не работает в выбранную дату"
	case domain.VerdictRejectedNoBusinessHours:
		return "для этого дня недели не заданы рабочие часы"
	case domain.VerdictRejectedOutsideBusinessHours:
		return "время вне рабочих часов компании"
	case domain.VerdictRejectedUnknownService:
		return "услуга не найдена"
	case domain.VerdictRejectedOverlap:
		return "выбранный временной слот уже занят"
	default:
		return "слот недоступен"
	}
}
