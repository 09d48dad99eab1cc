package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на запись
type Request struct {
	CompanyID          int64            // ID компании
	ServiceName        string           // Имя услуги в каталоге компании
	Date               types.Date       // Дата записи
	StartTime          types.TimeString // Время начала ("09:30:00")
	CustomerName       string           // Имя клиента
	CustomerPhone      string           // Телефон клиента
	Status             string           // Произвольный статус, по умолчанию "scheduled"
	ServiceDescription *string          // Комментарий к услуге (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID                 int64
	CompanyID          int64
	ServiceID          int64
	ServiceName        string
	DurationMinutes    int
	Date               types.Date
	StartTime          types.TimeString
	DateTime           time.Time
	CustomerName       string
	CustomerPhone      string
	Status             string
	ServiceDescription *string
	CreatedAt          time.Time
}
