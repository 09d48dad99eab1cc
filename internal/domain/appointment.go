package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Appointment запись клиента на услугу.
// Услуга закрепляется по ID при создании, имя дальше не используется.
type Appointment struct {
	ID                 int64
	CompanyID          int64
	ServiceID          int64
	Date               types.Date
	StartTime          types.TimeString
	CustomerName       string
	CustomerPhone      string
	Status             string
	ServiceDescription *string
	CreatedAt          time.Time
}

// DateTime дата и время начала записи одной точкой
func (a *Appointment) DateTime() time.Time {
	return CombineDateTime(a.Date, a.StartTime)
}

// AppointmentsFilter фильтр списка записей компании
type AppointmentsFilter struct {
	CompanyID int64       // Обязательный параметр
	ServiceID *int64      // Фильтр по услуге (опционально)
	StartDate *types.Date // Начало периода включительно (опционально)
	EndDate   *types.Date // Конец периода включительно (опционально)
	Page      Page
}

// CombineDateTime объединяет дату и время суток в одну точку во времени
func CombineDateTime(date types.Date, t types.TimeString) time.Time {
	return date.At(t)
}
