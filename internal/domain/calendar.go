package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BusinessHours рабочие часы компании в один день недели.
// На пару (CompanyID, DayOfWeek) допускается не более одной записи.
type BusinessHours struct {
	ID        int64
	CompanyID int64
	DayOfWeek int // 0 = понедельник ... 6 = воскресенье
	OpensAt   types.TimeString
	ClosesAt  types.TimeString
	CreatedAt time.Time
}

// Contains true, если t попадает в окно [OpensAt, ClosesAt] включительно
func (h *BusinessHours) Contains(t types.TimeString) bool {
	return !t.IsBefore(h.OpensAt) && !t.IsAfter(h.ClosesAt)
}

// Closure день, в который компания не принимает записи (праздник, выходной)
type Closure struct {
	ID          int64
	CompanyID   int64
	ClosureDate types.Date
	Reason      *string
	CreatedAt   time.Time
}
