package wallet

import "errors"

var (
	// ErrWalletNotFound возвращается, когда у пользователя нет кошелька
	ErrWalletNotFound = errors.New("wallet.repository: wallet not found")

	// ErrNegativeBalance возвращается, когда изменение увело бы баланс в минус
	ErrNegativeBalance = errors.New("wallet.repository: balance would become negative")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("wallet.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("wallet.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("wallet.repository: failed to scan row")
)
