package domain

// Verdict результат проверки доступности слота
type Verdict string

const (
	VerdictAccepted                     Verdict = "accepted"
	VerdictRejectedClosedDay            Verdict = "rejected_closed_day"
	VerdictRejectedNoBusinessHours      Verdict = "rejected_no_business_hours"
	VerdictRejectedOutsideBusinessHours Verdict = "rejected_outside_business_hours"
	VerdictRejectedUnknownService       Verdict = "rejected_unknown_service"
	VerdictRejectedOverlap              Verdict = "rejected_overlap"
)

// IsAccepted true, если слот можно бронировать
func (v Verdict) IsAccepted() bool {
	return v == VerdictAccepted
}

// String возвращает строковое представление
func (v Verdict) String() string {
	return string(v)
}
