package domain

import "time"

// Company компания-владелец расписания, услуг и записей
type Company struct {
	ID        int64
	Name      string
	Address   string
	Phone     string
	URL       string
	CreatedAt time.Time
}
