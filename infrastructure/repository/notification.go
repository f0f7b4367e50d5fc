package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/zyra-app/zyra-api/infrastructure/database/postgres"
	"github.com/zyra-app/zyra-api/internal/domain"
)

//go:generate mockgen -source=notification.go -destination=mocks/notification.go -package=mocks

const (
	notificationsTable = "notifications n"
)

type NotificationRepository interface {
	List(limit int) ([]*domain.Notification, error)
	Create(notification *domain.Notification) error
	MarkAsRead(notificationID string) error
}

type notificationRepository struct {
	conn *postgres.Connection
}

func NewNotificationRepository(conn *postgres.Connection) NotificationRepository {
	return &notificationRepository{
		conn: conn,
	}
}

func (r *notificationRepository) List(limit int) ([]*domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}

	sqlQuery, args, err := squirrel.
		Select("n.id", "n.type", "n.title", "n.message", "n.read", "n.created_at").
		From(notificationsTable).
		OrderBy("n.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)

	for rows.Next() {
		notification := &domain.Notification{}

		if err := rows.Scan(
			&notification.ID,
			&notification.Type,
			&notification.Title,
			&notification.Message,
			&notification.Read,
			&notification.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear notificação: %w", err)
		}

		notifications = append(notifications, notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *notificationRepository) Create(notification *domain.Notification) error {
	now := time.Now()

	sqlQuery, args, err := squirrel.
		Insert("notifications").
		Columns("id", "type", "title", "message", "read", "created_at").
		Values(
			notification.ID,
			notification.Type,
			notification.Title,
			notification.Message,
			notification.Read,
			now,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.DB.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir notificação: %w", err)
	}

	notification.CreatedAt = now

	return nil
}

func (r *notificationRepository) MarkAsRead(notificationID string) error {
	sqlQuery, args, err := squirrel.
		Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": notificationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.DB.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao marcar notificação como lida: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
