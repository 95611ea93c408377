package service

import (
	"context"
	"time"

	coreEntity "enoki-admin/core/entity"
	"enoki-admin/core/params"
	"enoki-admin/modules/notification/dto"
	"enoki-admin/modules/notification/entity"
	"enoki-admin/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	notif := &entity.Notification{
		AccountID: req.AccountID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Data:      entity.JSONB(req.Data),
		IsRead:    false,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	return s.repo.Create(ctx, notif)
}

// NotifyPageDispatched tells every staff account a teacher has been paged.
// Called from the dispatch task handler, not the request path.
func (s *NotificationService) NotifyPageDispatched(ctx context.Context, role, teacherName, location string, pageID uuid.UUID) error {
	notif := &entity.Notification{
		Title:   "Teacher paged",
		Message: teacherName + " has been paged to " + location,
		Type:    entity.TypePage,
		Data:    entity.JSONB{"page_id": pageID.String()},
	}
	return s.repo.BroadcastToRole(ctx, role, notif)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, accountID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.GetByAccountID(ctx, accountID, queryParams)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, accountID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, accountID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, accountID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, accountID)
}

func (s *NotificationService) CountUnread(ctx context.Context, accountID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, accountID)
}
