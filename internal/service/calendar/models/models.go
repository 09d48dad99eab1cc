package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модели

// CreateBusinessHoursRequest запрос на создание рабочих часов
type CreateBusinessHoursRequest struct {
	CompanyID int64            `json:"-"`
	DayOfWeek int              `json:"dayOfWeek"` // 0 = понедельник ... 6 = воскресенье
	OpensAt   types.TimeString `json:"opensAt"`   // "09:00:00"
	ClosesAt  types.TimeString `json:"closesAt"`  // "18:00:00"
}

// CreateClosureRequest запрос на создание нерабочего дня
type CreateClosureRequest struct {
	CompanyID   int64      `json:"-"`
	ClosureDate types.Date `json:"closureDate"` // "2025-12-31"
	Reason      *string    `json:"reason,omitempty"`
}

// Response модели

// BusinessHoursResponse ответ с рабочими часами
type BusinessHoursResponse struct {
	ID        int64            `json:"id"`
	CompanyID int64            `json:"companyId"`
	DayOfWeek int              `json:"dayOfWeek"`
	OpensAt   types.TimeString `json:"opensAt"`
	ClosesAt  types.TimeString `json:"closesAt"`
	CreatedAt time.Time        `json:"createdAt"`
}

// BusinessHoursListResponse ответ со списком рабочих часов
type BusinessHoursListResponse struct {
	BusinessHours []BusinessHoursResponse `json:"businessHours"`
}

// ClosureResponse ответ с нерабочим днем
type ClosureResponse struct {
	ID          int64      `json:"id"`
	CompanyID   int64      `json:"companyId"`
	ClosureDate types.Date `json:"closureDate"`
	Reason      *string    `json:"reason,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ClosureListResponse ответ со списком нерабочих дней
type ClosureListResponse struct {
	Closures []ClosureResponse `json:"closures"`
}

// Методы конвертации

// FromDomainBusinessHours конвертирует domain модель в DTO
func FromDomainBusinessHours(h *domain.BusinessHours) *BusinessHoursResponse {
	if h == nil {
		return nil
	}

	return &BusinessHoursResponse{
		ID:        h.ID,
		CompanyID: h.CompanyID,
		DayOfWeek: h.DayOfWeek,
		OpensAt:   h.OpensAt,
		ClosesAt:  h.ClosesAt,
		CreatedAt: h.CreatedAt,
	}
}

// FromDomainBusinessHoursList конвертирует список domain моделей в DTO
func FromDomainBusinessHoursList(hours []*domain.BusinessHours) *BusinessHoursListResponse {
	resp := &BusinessHoursListResponse{
		BusinessHours: make([]BusinessHoursResponse, 0, len(hours)),
	}
	for _, h := range hours {
		resp.BusinessHours = append(resp.BusinessHours, *FromDomainBusinessHours(h))
	}
	return resp
}

// FromDomainClosure конвертирует domain модель в DTO
func FromDomainClosure(c *domain.Closure) *ClosureResponse {
	if c == nil {
		return nil
	}

	return &ClosureResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		ClosureDate: c.ClosureDate,
		Reason:      c.Reason,
		CreatedAt:   c.CreatedAt,
	}
}

// FromDomainClosureList конвертирует список domain моделей в DTO
func FromDomainClosureList(closures []*domain.Closure) *ClosureListResponse {
	resp := &ClosureListResponse{
		Closures: make([]ClosureResponse, 0, len(closures)),
	}
	for _, c := range closures {
		resp.Closures = append(resp.Closures, *FromDomainClosure(c))
	}
	return resp
}
