package domain

// Значения по умолчанию
const (
	DefaultAppointmentStatus = "scheduled"
	DefaultPageLimit         = 100
	MaxPageLimit             = 500
)

// Ограничения бизнес-валидации
const (
	MinServiceNameLength = 5
	MinDayOfWeek         = 0
	MaxDayOfWeek         = 6
	MaxServiceDuration   = 24 * 60
)

// Форматы даты и времени на границе API
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04:05"   // HH:MM:SS
)
