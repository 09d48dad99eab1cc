package calendar

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("company not found")

	// ErrClosureNotFound возвращается, когда нерабочий день на дату не найден
	ErrClosureNotFound = errors.New("closure not found")

	// ErrAlreadyExists возвращается, когда часы на этот день недели или нерабочий день на эту дату уже заданы
	ErrAlreadyExists = errors.New("calendar entry already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда время закрытия не позже времени открытия
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
