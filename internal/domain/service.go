package domain

import "time"

// Service услуга с фиксированной длительностью
type Service struct {
	ID              int64
	CompanyID       int64
	Name            string
	DurationMinutes int
	Price           float64
	CreatedAt       time.Time
}
