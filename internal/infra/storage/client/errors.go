package client

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrTableMissing таблица clients отсутствует (миграция не применена)
	ErrTableMissing = errors.New("client.repository: clients table does not exist")

	// ErrNotInTransaction блокировка по email возможна только внутри транзакции
	ErrNotInTransaction = errors.New("client.repository: advisory lock requires a transaction")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
