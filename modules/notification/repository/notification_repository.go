package repository

import (
	"context"

	"enoki-admin/core/database"
	"enoki-admin/core/logger"
	"enoki-admin/core/params"
	"enoki-admin/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type NotificationRepository struct {
	db database.IDatabase
}

func NewNotificationRepository(db database.IDatabase) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (title, message, type, data, account_id, is_read, created_at, updated_at)
		VALUES (:title, :message, :type, :data, :account_id, :is_read, :created_at, :updated_at)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, notification)
	if err != nil {
		logger.Error("NotificationRepository:Create", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&notification.ID)
	}
	return nil
}

func (r *NotificationRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID, params params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM notifications WHERE account_id = $1`

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, accountID)
	if err != nil {
		logger.Error("NotificationRepository:GetByAccountID:Count", "error", err)
		return nil, err
	}

	query := `
		SELECT * ` + baseQuery + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var notifications []entity.Notification
	err = r.db.SelectContext(ctx, &notifications, query, accountID, params.PageSize, offset)
	if err != nil {
		logger.Error("NotificationRepository:GetByAccountID:Select", "error", err)
		return nil, err
	}

	return &entity.PaginatedNotificationEntity{
		Items:      notifications,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, accountID uuid.UUID, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE notifications SET is_read = true WHERE account_id = ? AND id IN (?)`, accountID, ids)
	if err != nil {
		return err
	}

	query = r.db.SQLx().Rebind(query)
	err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error("NotificationRepository:MarkAsRead", "error", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, accountID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true WHERE account_id = $1`
	err := r.db.ExecContext(ctx, query, accountID)
	if err != nil {
		logger.Error("NotificationRepository:MarkAllAsRead", "error", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, accountID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE account_id = $1 AND is_read = false`
	err := r.db.GetContext(ctx, &count, query, accountID)
	if err != nil {
		logger.Error("NotificationRepository:CountUnread", "error", err)
		return 0, err
	}
	return count, nil
}

// BroadcastToRole inserts one notification per account holding the role
func (r *NotificationRepository) BroadcastToRole(ctx context.Context, role string, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (title, message, type, data, account_id, is_read, created_at, updated_at)
		SELECT $1, $2, $3, $4, id, false, now(), now()
		FROM accounts
		WHERE role = $5
	`
	err := r.db.ExecContext(ctx, query,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.Data,
		role,
	)
	if err != nil {
		logger.Error("NotificationRepository:BroadcastToRole", "error", err)
		return err
	}
	return nil
}
