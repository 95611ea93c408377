package service

import (
	"context"
	"encoding/json"

	"enoki-admin/core/constants"
	"enoki-admin/core/logger"
	"enoki-admin/core/worker"
	"enoki-admin/modules/kiosk/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// PagePayload is the body of both paging task types
type PagePayload struct {
	PageID uuid.UUID `json:"page_id"`
}

func NewPageDispatchTask(pageID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(PagePayload{PageID: pageID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(worker.TypePageDispatch, payload), nil
}

func NewPageExpireTask(pageID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(PagePayload{PageID: pageID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(worker.TypePageExpire, payload), nil
}

// Notifier decouples the task handlers from the notification module
type Notifier interface {
	NotifyPageDispatched(ctx context.Context, role, teacherName, location string, pageID uuid.UUID) error
}

// TaskHandlers processes paging tasks off the request path
type TaskHandlers struct {
	repo     PageRepositoryInterface
	queue    QueueInterface
	notifier Notifier
}

func NewTaskHandlers(repo PageRepositoryInterface, queue QueueInterface, notifier Notifier) *TaskHandlers {
	return &TaskHandlers{repo: repo, queue: queue, notifier: notifier}
}

// HandlePageDispatch marks the page dispatched and notifies staff accounts
func (h *TaskHandlers) HandlePageDispatch(ctx context.Context, t *asynq.Task) error {
	var payload PagePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	page, err := h.repo.GetById(ctx, payload.PageID)
	if err != nil {
		return err
	}
	if page == nil || page.Status != entity.StatusPending {
		return nil // completed or expired before dispatch ran
	}

	if err := h.repo.SetStatus(ctx, payload.PageID, entity.StatusDispatched); err != nil {
		return err
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyPageDispatched(ctx, constants.RoleStaff, page.TeacherName, page.Location, page.ID); err != nil {
			// The page is dispatched either way; notifications are best effort
			logger.Warn("TaskHandlers:HandlePageDispatch:Notify", "page_id", page.ID, "error", err)
		}
	}

	logger.Info("TaskHandlers:HandlePageDispatch", "page_id", page.ID, "teacher", page.TeacherName)
	return nil
}

// HandlePageExpire expires a page nobody handled and drops it from the queue
func (h *TaskHandlers) HandlePageExpire(ctx context.Context, t *asynq.Task) error {
	var payload PagePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	expired, err := h.repo.ExpireIfOpen(ctx, payload.PageID)
	if err != nil {
		return err
	}
	if !expired {
		return nil
	}

	if err := h.queue.Remove(ctx, payload.PageID); err != nil {
		logger.Warn("TaskHandlers:HandlePageExpire:Remove", "page_id", payload.PageID, "error", err)
	}

	logger.Info("TaskHandlers:HandlePageExpire", "page_id", payload.PageID)
	return nil
}
