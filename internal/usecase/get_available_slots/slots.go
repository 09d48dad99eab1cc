package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// generateTimeSlots генерирует кандидатов на начало записи.
// Шаг равен длительности услуги, начиная с открытия. Время закрытия включительно,
// как и в движке доступности: запись может начаться ровно в closes_at.
func generateTimeSlots(hours *domain.BusinessHours, durationMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if durationMinutes <= 0 {
		return slots
	}

	current := hours.OpensAt
	for !current.IsAfter(hours.ClosesAt) {
		slots = append(slots, current)

		next, err := current.AddMinutes(durationMinutes)
		if err != nil {
			// Следующий слот за полночью
			break
		}
		current = next
	}

	return slots
}

// filterFreeSlots оставляет слоты, не пересекающиеся с существующими записями той же услуги
func filterFreeSlots(slots []types.TimeString, durationMinutes int, existing []*domain.Appointment) []types.TimeString {
	free := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !domain.ConflictsWithAny(slot, durationMinutes, existing) {
			free = append(free, slot)
		}
	}
	return free
}

// filterPastSlots убирает прошедшие слоты: для прошлой даты все, для сегодняшней начавшиеся до now
func filterPastSlots(slots []types.TimeString, date types.Date, now time.Time) []types.TimeString {
	today := types.NewDate(now)
	if date.Before(today) {
		return []types.TimeString{}
	}
	if date != today {
		return slots
	}

	current := types.NewTimeString(now)
	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if !slot.IsBefore(current) {
			result = append(result, slot)
		}
	}
	return result
}
