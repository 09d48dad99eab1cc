package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	CompanyID       int64           `json:"companyId"`
	ServiceID       int64           `json:"serviceId"`
	ServiceName     string          `json:"serviceName"`
	DurationMinutes int             `json:"durationMinutes"`
	Reason          string          `json:"reason,omitempty"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, 0, len(resp.Slots))
	for _, start := range resp.Slots {
		slot := AvailableSlot{StartTime: start.String()}
		// Конец может уйти за полночь, тогда не показываем его
		if end, err := start.AddMinutes(resp.DurationMinutes); err == nil {
			slot.EndTime = end.String()
		}
		slots = append(slots, slot)
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.String(),
		CompanyID:       resp.CompanyID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Reason:          resp.Reason.String(),
		Slots:           slots,
	}
}
