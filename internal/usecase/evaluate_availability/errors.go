package evaluate_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (в т.ч. ошибки парсинга даты/времени)
	ErrInvalidInput = errors.New("evaluate_availability: invalid input data")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("evaluate_availability: internal error")
)
