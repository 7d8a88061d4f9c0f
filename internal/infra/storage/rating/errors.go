package rating

import "errors"

var (
	// ErrAlreadyRated возвращается при повторной оценке той же цели по бронированию
	ErrAlreadyRated = errors.New("rating.repository: already rated")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rating.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rating.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rating.repository: failed to scan row")
)
