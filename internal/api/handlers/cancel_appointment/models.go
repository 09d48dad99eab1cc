package cancel_appointment

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	ID        int64 `json:"id"`
	Cancelled bool  `json:"cancelled"`
}
