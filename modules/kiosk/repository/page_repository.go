package repository

import (
	"context"
	"database/sql"

	"enoki-admin/core/database"
	"enoki-admin/core/logger"
	"enoki-admin/modules/kiosk/entity"

	"github.com/google/uuid"
)

type PageRepository struct {
	DB database.IDatabase
}

func NewPageRepository(db database.IDatabase) *PageRepository {
	return &PageRepository{DB: db}
}

func (r *PageRepository) Create(ctx context.Context, page *entity.Page) error {
	query := `
		INSERT INTO pages (teacher_id, teacher_name, student_name, location, reason, urgency, status)
		VALUES (:teacher_id, :teacher_name, :student_name, :location, :reason, :urgency, :status)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, page)
	if err != nil {
		logger.Error("PageRepository:Create", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&page.ID)
	}
	return nil
}

func (r *PageRepository) GetById(ctx context.Context, id uuid.UUID) (*entity.Page, error) {
	var page entity.Page
	query := `
		SELECT id, teacher_id, teacher_name, student_name, location, reason, urgency, status, completed_at, created_at, updated_at
		FROM pages
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &page, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PageRepository:GetById", "error", err)
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE pages SET status = $1, updated_at = now() WHERE id = $2`
	err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		logger.Error("PageRepository:SetStatus", "error", err)
	}
	return err
}

// Complete marks a page handled; returns false when the page was already in
// a terminal state.
func (r *PageRepository) Complete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE pages
		SET status = $1, completed_at = now(), updated_at = now()
		WHERE id = $2 AND status IN ($3, $4)
	`
	result, err := r.DB.SQLx().ExecContext(ctx, query,
		entity.StatusCompleted, id, entity.StatusPending, entity.StatusDispatched)
	if err != nil {
		logger.Error("PageRepository:Complete", "error", err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// ExpireIfOpen expires a page unless it was completed first; returns whether
// the row transitioned.
func (r *PageRepository) ExpireIfOpen(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE pages
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status IN ($3, $4)
	`
	result, err := r.DB.SQLx().ExecContext(ctx, query,
		entity.StatusExpired, id, entity.StatusPending, entity.StatusDispatched)
	if err != nil {
		logger.Error("PageRepository:ExpireIfOpen", "error", err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// RecentActivity lists the latest settled pages, newest first
func (r *PageRepository) RecentActivity(ctx context.Context, limit int) ([]entity.Page, error) {
	query := `
		SELECT id, teacher_id, teacher_name, student_name, location, reason, urgency, status, completed_at, created_at, updated_at
		FROM pages
		WHERE status IN ($1, $2)
		ORDER BY updated_at DESC
		LIMIT $3
	`
	var pages []entity.Page
	err := r.DB.SelectContext(ctx, &pages, query, entity.StatusCompleted, entity.StatusExpired, limit)
	if err != nil {
		logger.Error("PageRepository:RecentActivity", "error", err)
		return nil, err
	}
	return pages, nil
}

func (r *PageRepository) Metrics(ctx context.Context) (*entity.Metrics, error) {
	var metrics entity.Metrics
	query := `
		SELECT
			COUNT(*) FILTER (WHERE created_at >= date_trunc('day', now())) AS total_calls_today,
			COUNT(*) FILTER (WHERE created_at >= date_trunc('week', now())) AS total_calls_this_week,
			COALESCE(
				AVG(EXTRACT(EPOCH FROM (completed_at - created_at)) / 60)
					FILTER (WHERE status = $1 AND created_at >= date_trunc('week', now())),
				0
			) AS average_response_time_minutes
		FROM pages
	`
	err := r.DB.GetContext(ctx, &metrics, query, entity.StatusCompleted)
	if err != nil {
		logger.Error("PageRepository:Metrics", "error", err)
		return nil, err
	}
	return &metrics, nil
}
