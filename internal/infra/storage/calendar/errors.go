package calendar

import "errors"

var (
	// ErrBusinessHoursNotFound возвращается, когда рабочие часы на день недели не заданы
	ErrBusinessHoursNotFound = errors.New("calendar.repository: business hours not found")

	// ErrClosureNotFound возвращается, когда на дату нет нерабочего дня
	ErrClosureNotFound = errors.New("calendar.repository: closure not found")

	// ErrAlreadyExists возвращается при нарушении уникальности (день недели или дата уже заняты)
	ErrAlreadyExists = errors.New("calendar.repository: record already exists")

	// ErrInvalidReference возвращается, когда компания из записи не существует
	ErrInvalidReference = errors.New("calendar.repository: referenced company does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
