package category

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с категориями услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория категорий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все категории в стабильном порядке
func (r *Repository) List(ctx context.Context, enabledOnly bool) ([]*domain.ServiceCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"icon_tag",
		"enabled",
		"sub_sections",
		"addons",
		"created_at",
		"updated_at",
	).
		From("service_categories").
		OrderBy("id")

	if enabledOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"enabled": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryCategories(ctx, executor, query, args, "List")
}

// ListByTown возвращает категории, явно доступные в указанном городе
// через связь category_towns (доступность не выводится из самой категории)
func (r *Repository) ListByTown(ctx context.Context, townID int64, enabledOnly bool) ([]*domain.ServiceCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"c.id",
		"c.name",
		"c.icon_tag",
		"c.enabled",
		"c.sub_sections",
		"c.addons",
		"c.created_at",
		"c.updated_at",
	).
		From("service_categories c").
		Join("category_towns ct ON ct.category_id = c.id").
		Where(squirrel.Eq{"ct.town_id": townID}).
		OrderBy("c.id")

	if enabledOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"c.enabled": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTown - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryCategories(ctx, executor, query, args, "ListByTown")
}

// GetByID получает категорию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"icon_tag",
		"enabled",
		"sub_sections",
		"addons",
		"created_at",
		"updated_at",
	).
		From("service_categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	category, err := scanCategory(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return category, nil
}

// IsAvailableInTown проверяет явную связь категория-город
func (r *Repository) IsAvailableInTown(ctx context.Context, categoryID, townID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("category_towns").
		Where(squirrel.Eq{"category_id": categoryID, "town_id": townID}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsAvailableInTown - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsAvailableInTown - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

func (r *Repository) queryCategories(
	ctx context.Context,
	executor DBExecutor,
	query string,
	args []interface{},
	op string,
) ([]*domain.ServiceCategory, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	categories := make([]*domain.ServiceCategory, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return categories, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row rowScanner) (*domain.ServiceCategory, error) {
	var category domain.ServiceCategory
	var subSectionsRaw, addonsRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.IconTag,
		&category.Enabled,
		&subSectionsRaw,
		&addonsRaw,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan category: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(subSectionsRaw, &category.SubSections); err != nil {
		return nil, fmt.Errorf("%w: decode sub_sections: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(addonsRaw, &category.Addons); err != nil {
		return nil, fmt.Errorf("%w: decode addons: %v", ErrScanRow, err)
	}

	category.CreatedAt = createdAt.Time
	category.UpdatedAt = updatedAt.Time

	return &category, nil
}
