package ticket

import "errors"

var (
	// ErrTicketNotFound возвращается, когда тикет не найден
	ErrTicketNotFound = errors.New("ticket.repository: ticket not found")

	// ErrOpenTicketExists возвращается, когда по бронированию уже есть открытый тикет
	ErrOpenTicketExists = errors.New("ticket.repository: reservation already has an open ticket")

	// ErrStatusMismatch возвращается, когда тикет уже закрыт
	ErrStatusMismatch = errors.New("ticket.repository: ticket is not open")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ticket.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("ticket.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ticket.repository: failed to scan row")
)
