package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается, когда на (service_id, date, start_time) уже есть запись
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrInvalidReference возвращается, когда компания или услуга из записи не существует
	ErrInvalidReference = errors.New("appointment.repository: referenced company or service does not exist")

	// ErrTransaction возвращается при попытке взять блокировку слота вне транзакции
	ErrTransaction = errors.New("appointment.repository: transaction required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
