package provider

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с исполнителями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исполнителей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает всех исполнителей в стабильном порядке (по id)
// Фильтрация по городу/категории/доступности - дело matching, не хранилища
func (r *Repository) List(ctx context.Context) ([]*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"display_name",
		"phone",
		"email",
		"rating",
		"review_count",
		"category_ids",
		"town_ids",
		"status",
		"enabled",
		"created_at",
		"updated_at",
	).
		From("providers").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	providers := make([]*domain.Provider, 0)
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return providers, nil
}

// GetByID получает исполнителя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"display_name",
		"phone",
		"email",
		"rating",
		"review_count",
		"category_ids",
		"town_ids",
		"status",
		"enabled",
		"created_at",
		"updated_at",
	).
		From("providers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var provider domain.Provider
	var categoryIDs, townIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&provider.ID,
		&provider.DisplayName,
		&provider.Phone,
		&provider.Email,
		&provider.Rating,
		&provider.ReviewCount,
		&categoryIDs,
		&townIDs,
		&provider.Status,
		&provider.Enabled,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %v", ErrScanRow, err)
	}

	provider.CategoryIDs = categoryIDs
	provider.TownIDs = townIDs
	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	return &provider, nil
}

// UpdateStatus обновляет self-reported статус исполнителя (active/busy/offline)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ProviderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("providers").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrProviderNotFound
	}

	return nil
}

func scanProvider(rows *sql.Rows) (*domain.Provider, error) {
	var provider domain.Provider
	var categoryIDs, townIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	if err := rows.Scan(
		&provider.ID,
		&provider.DisplayName,
		&provider.Phone,
		&provider.Email,
		&provider.Rating,
		&provider.ReviewCount,
		&categoryIDs,
		&townIDs,
		&provider.Status,
		&provider.Enabled,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, fmt.Errorf("%w: scan provider: %v", ErrScanRow, err)
	}

	provider.CategoryIDs = categoryIDs
	provider.TownIDs = townIDs
	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	return &provider, nil
}
