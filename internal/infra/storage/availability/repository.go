package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-MarketplaceService/pkg/types"
)

// Переиспользуем интерфейс исполнителя из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с расписаниями исполнителей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// JSON-представления расписания в колонках JSONB

type slotJSON struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type dayOffJSON struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Reason *string `json:"reason,omitempty"`
}

// GetByProviderID получает расписание исполнителя (1:1 с исполнителем)
func (r *Repository) GetByProviderID(ctx context.Context, providerID int64) (*domain.ProviderAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"provider_id",
		"weekly_schedule",
		"day_off_exceptions",
		"enabled",
		"created_at",
		"updated_at",
	).
		From("provider_availability").
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProviderID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	av, err := scanAvailability(row)
	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, err
	}

	return av, nil
}

// ListByProviderIDs получает расписания пачкой, ключ - id исполнителя
// Исполнители без записи в карту не попадают
func (r *Repository) ListByProviderIDs(ctx context.Context, providerIDs []int64) (map[int64]*domain.ProviderAvailability, error) {
	result := make(map[int64]*domain.ProviderAvailability, len(providerIDs))
	if len(providerIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"provider_id",
		"weekly_schedule",
		"day_off_exceptions",
		"enabled",
		"created_at",
		"updated_at",
	).
		From("provider_availability").
		Where(squirrel.Expr("provider_id = ANY(?)", pq.Array(providerIDs))).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProviderIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProviderIDs - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		av, err := scanAvailability(rows)
		if err != nil {
			return nil, err
		}
		result[av.ProviderID] = av
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProviderIDs - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// Upsert создает или заменяет расписание исполнителя
// Инварианты расписания (start < end, не более одного слота на день недели)
// проверяются до записи
func (r *Repository) Upsert(ctx context.Context, av *domain.ProviderAvailability) error {
	if err := av.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	scheduleRaw, err := marshalSchedule(av.WeeklySchedule)
	if err != nil {
		return fmt.Errorf("%w: Upsert - encode schedule: %v", ErrBuildQuery, err)
	}
	dayOffsRaw, err := marshalDayOffs(av.DayOffExceptions)
	if err != nil {
		return fmt.Errorf("%w: Upsert - encode day offs: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("provider_availability").
		Columns("provider_id", "weekly_schedule", "day_off_exceptions", "enabled").
		Values(av.ProviderID, scheduleRaw, dayOffsRaw, av.Enabled).
		Suffix(`ON CONFLICT (provider_id) DO UPDATE SET
			weekly_schedule = EXCLUDED.weekly_schedule,
			day_off_exceptions = EXCLUDED.day_off_exceptions,
			enabled = EXCLUDED.enabled,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailability(row rowScanner) (*domain.ProviderAvailability, error) {
	var av domain.ProviderAvailability
	var scheduleRaw, dayOffsRaw []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&av.ProviderID,
		&scheduleRaw,
		&dayOffsRaw,
		&av.Enabled,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan availability: %v", ErrScanRow, err)
	}

	av.WeeklySchedule, err = unmarshalSchedule(scheduleRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode weekly_schedule: %v", ErrScanRow, err)
	}
	av.DayOffExceptions, err = unmarshalDayOffs(dayOffsRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode day_off_exceptions: %v", ErrScanRow, err)
	}

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	return &av, nil
}

func marshalSchedule(slots []domain.TimeSlot) ([]byte, error) {
	encoded := make([]slotJSON, len(slots))
	for i, slot := range slots {
		encoded[i] = slotJSON{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}
	return json.Marshal(encoded)
}

func unmarshalSchedule(raw []byte) ([]domain.TimeSlot, error) {
	var encoded []slotJSON
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, len(encoded))
	for i, e := range encoded {
		slots[i] = domain.TimeSlot{
			DayOfWeek: e.DayOfWeek,
			StartTime: types.TimeString(e.StartTime),
			EndTime:   types.TimeString(e.EndTime),
		}
	}
	return slots, nil
}

func marshalDayOffs(dayOffs []domain.DayOffException) ([]byte, error) {
	encoded := make([]dayOffJSON, len(dayOffs))
	for i, off := range dayOffs {
		encoded[i] = dayOffJSON{
			Date:   off.Date.Format(domain.DateFormat),
			Reason: off.Reason,
		}
	}
	return json.Marshal(encoded)
}

func unmarshalDayOffs(raw []byte) ([]domain.DayOffException, error) {
	var encoded []dayOffJSON
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, err
	}

	dayOffs := make([]domain.DayOffException, len(encoded))
	for i, e := range encoded {
		date, err := time.Parse(domain.DateFormat, e.Date)
		if err != nil {
			return nil, err
		}
		dayOffs[i] = domain.DayOffException{Date: date, Reason: e.Reason}
	}
	return dayOffs, nil
}
