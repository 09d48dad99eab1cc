package create_appointment

import (
	"fmt"
	"time"

	bookAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const dateTimeLayout = "2006-01-02T15:04:05"

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceName        string  `json:"serviceName"`
	Date               string  `json:"date"`      // "2025-10-15"
	StartTime          string  `json:"startTime"` // "10:00:00"
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone"`
	Status             string  `json:"status,omitempty"`
	ServiceDescription *string `json:"serviceDescription,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                 int64   `json:"id"`
	CompanyID          int64   `json:"companyId"`
	ServiceID          int64   `json:"serviceId"`
	ServiceName        string  `json:"serviceName"`
	DurationMinutes    int     `json:"durationMinutes"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	DateTime           string  `json:"dateTime"`
	CustomerName       string  `json:"customerName"`
	CustomerPhone      string  `json:"customerPhone"`
	Status             string  `json:"status"`
	ServiceDescription *string `json:"serviceDescription,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateAppointmentRequest) ToUseCaseRequest(companyID int64) (*bookAppointment.Request, error) {
	date, err := types.NewDateFromString(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	return &bookAppointment.Request{
		CompanyID:          companyID,
		ServiceName:        r.ServiceName,
		Date:               date,
		StartTime:          startTime,
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		Status:             r.Status,
		ServiceDescription: r.ServiceDescription,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 resp.ID,
		CompanyID:          resp.CompanyID,
		ServiceID:          resp.ServiceID,
		ServiceName:        resp.ServiceName,
		DurationMinutes:    resp.DurationMinutes,
		Date:               resp.Date.String(),
		StartTime:          resp.StartTime.String(),
		DateTime:           resp.DateTime.Format(dateTimeLayout),
		CustomerName:       resp.CustomerName,
		CustomerPhone:      resp.CustomerPhone,
		Status:             resp.Status,
		ServiceDescription: resp.ServiceDescription,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}
}
