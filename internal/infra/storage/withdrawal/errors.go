package withdrawal

import "errors"

var (
	// ErrWithdrawalNotFound возвращается, когда заявка на вывод не найдена
	ErrWithdrawalNotFound = errors.New("withdrawal.repository: withdrawal request not found")

	// ErrStatusMismatch возвращается, когда заявка уже не в ожидаемом статусе
	ErrStatusMismatch = errors.New("withdrawal.repository: status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("withdrawal.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("withdrawal.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("withdrawal.repository: failed to scan row")
)
