package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модели

// ListAppointmentsRequest запрос на получение записей компании
// Date выбирает один день, From/To период включительно. Date имеет приоритет.
type ListAppointmentsRequest struct {
	CompanyID int64
	ServiceID *int64      // Фильтр по услуге (опционально)
	Date      *types.Date // Конкретная дата (опционально)
	From      *types.Date // Начало периода (опционально)
	To        *types.Date // Конец периода (опционально)
	Page      domain.Page
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentsFilter {
	filter := domain.AppointmentsFilter{
		CompanyID: r.CompanyID,
		ServiceID: r.ServiceID,
		StartDate: r.From,
		EndDate:   r.To,
		Page:      r.Page.Normalize(),
	}

	if r.Date != nil {
		filter.StartDate = r.Date
		filter.EndDate = r.Date
	}

	return filter
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                 int64            `json:"id"`
	CompanyID          int64            `json:"companyId"`
	ServiceID          int64            `json:"serviceId"`
	Date               types.Date       `json:"date"`      // "2025-10-15"
	StartTime          types.TimeString `json:"startTime"` // "10:00:00"
	DateTime           string           `json:"dateTime"`  // "2025-10-15T10:00:00"
	CustomerName       string           `json:"customerName"`
	CustomerPhone      string           `json:"customerPhone"`
	Status             string           `json:"status"`
	ServiceDescription *string          `json:"serviceDescription,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// DateTimeLayout формат объединенной даты и времени записи
const DateTimeLayout = "2006-01-02T15:04:05"

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                 a.ID,
		CompanyID:          a.CompanyID,
		ServiceID:          a.ServiceID,
		Date:               a.Date,
		StartTime:          a.StartTime,
		DateTime:           a.DateTime().Format(DateTimeLayout),
		CustomerName:       a.CustomerName,
		CustomerPhone:      a.CustomerPhone,
		Status:             a.Status,
		ServiceDescription: a.ServiceDescription,
		CreatedAt:          a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}
	return resp
}
