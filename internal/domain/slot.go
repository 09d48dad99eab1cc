package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Interval полуоткрытый интервал [Start, End) в секундах от полуночи одного дня.
// End может выходить за 24:00: переход через полночь не моделируется.
type Interval struct {
	Start int
	End   int
}

// NewInterval интервал, начинающийся в start и длящийся durationMinutes
func NewInterval(start types.TimeString, durationMinutes int) Interval {
	s := start.Seconds()
	return Interval{Start: s, End: s + durationMinutes*60}
}

// Overlaps true, если интервалы пересекаются.
// Касание границ (конец одного равен началу другого) пересечением не считается.
func (i Interval) Overlaps(other Interval) bool {
	return !(i.End <= other.Start || i.Start >= other.End)
}

// ConflictsWithAny true, если интервал новой записи пересекается хотя бы с одной существующей.
// Все записи относятся к одной услуге и одной дате, поэтому длительность общая.
func ConflictsWithAny(start types.TimeString, durationMinutes int, existing []*Appointment) bool {
	proposed := NewInterval(start, durationMinutes)
	for _, a := range existing {
		if proposed.Overlaps(NewInterval(a.StartTime, durationMinutes)) {
			return true
		}
	}
	return false
}
