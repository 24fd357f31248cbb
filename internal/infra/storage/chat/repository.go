package chat

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

// Repository репозиторий для работы с сообщениями чата
// Тред сообщений ключуется по bookingId, отдельной сущности треда нет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория чата
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет сообщение в тред бронирования
func (r *Repository) Append(ctx context.Context, msg *domain.ChatMessage) (*domain.ChatMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("chat_messages").
		Columns("booking_id", "sender_id", "sender_role", "content", "read").
		Values(msg.BookingID, msg.SenderID, msg.SenderRole, msg.Content, msg.Read).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	msg.CreatedAt = createdAt.Time

	return msg, nil
}

// ListByBooking возвращает тред бронирования от старых сообщений к новым
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.ChatMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"sender_id",
		"sender_role",
		"content",
		"read",
		"created_at",
	).
		From("chat_messages").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at", "id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.ChatMessage, 0)
	for rows.Next() {
		var msg domain.ChatMessage
		var createdAt sql.NullTime

		if err := rows.Scan(
			&msg.ID,
			&msg.BookingID,
			&msg.SenderID,
			&msg.SenderRole,
			&msg.Content,
			&msg.Read,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan message: %v", ErrScanRow, err)
		}

		msg.CreatedAt = createdAt.Time
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - iterate rows: %v", ErrScanRow, err)
	}

	return messages, nil
}

// MarkReadForRecipient помечает прочитанными все сообщения треда,
// отправленные НЕ указанным пользователем (то есть адресованные ему)
func (r *Repository) MarkReadForRecipient(ctx context.Context, bookingID, recipientID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("chat_messages").
		Set("read", true).
		Where(squirrel.Eq{"booking_id": bookingID, "read": false}).
		Where(squirrel.NotEq{"sender_id": recipientID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkReadForRecipient - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkReadForRecipient - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
