package get_available_slots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	CompanyID   int64      // ID компании
	ServiceName string     // Имя услуги
	Date        types.Date // Дата
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            types.Date
	CompanyID       int64
	ServiceID       int64
	ServiceName     string
	DurationMinutes int

	// Reason почему слотов нет: закрыто или не заданы часы. Пустой, если день рабочий.
	Reason domain.Verdict

	Slots []types.TimeString
}
