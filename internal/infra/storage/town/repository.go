package town

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с городами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория городов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все города в стабильном порядке
// Если enabledOnly = true, возвращает только включенные города
func (r *Repository) List(ctx context.Context, enabledOnly bool) ([]*domain.Town, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"region",
		"enabled",
		"created_at",
		"updated_at",
	).
		From("towns").
		OrderBy("id")

	if enabledOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"enabled": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	towns := make([]*domain.Town, 0)
	for rows.Next() {
		town, err := scanTown(rows)
		if err != nil {
			return nil, err
		}
		towns = append(towns, town)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return towns, nil
}

// GetByID получает город по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Town, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"region",
		"enabled",
		"created_at",
		"updated_at",
	).
		From("towns").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var town domain.Town
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&town.ID,
		&town.Name,
		&town.Region,
		&town.Enabled,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTownNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan town: %v", ErrScanRow, err)
	}

	town.CreatedAt = createdAt.Time
	town.UpdatedAt = updatedAt.Time

	return &town, nil
}

func scanTown(rows *sql.Rows) (*domain.Town, error) {
	var town domain.Town
	var createdAt, updatedAt sql.NullTime

	if err := rows.Scan(
		&town.ID,
		&town.Name,
		&town.Region,
		&town.Enabled,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, fmt.Errorf("%w: scan town: %v", ErrScanRow, err)
	}

	town.CreatedAt = createdAt.Time
	town.UpdatedAt = updatedAt.Time

	return &town, nil
}
