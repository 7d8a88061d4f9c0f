package garage

import "errors"

var (
	// ErrGarageNotFound возвращается, когда гараж не найден
	ErrGarageNotFound = errors.New("garage.repository: garage not found")

	// ErrBlackoutExists возвращается, когда дата уже заблокирована
	ErrBlackoutExists = errors.New("garage.repository: blackout date already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("garage.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("garage.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("garage.repository: failed to scan row")
)
