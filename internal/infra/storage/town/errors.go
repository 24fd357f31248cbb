package town

import "errors"

var (
	// ErrTownNotFound возвращается, когда город не найден
	ErrTownNotFound = errors.New("town.repository: town not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("town.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("town.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("town.repository: failed to scan row")
)
