package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrAlreadyExists возвращается, когда услуга с таким именем у компании уже есть
	ErrAlreadyExists = errors.New("catalog.repository: service already exists")

	// ErrInvalidReference возвращается, когда компания из записи не существует
	ErrInvalidReference = errors.New("catalog.repository: referenced company does not exist")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
