package service

import (
	"context"
	"strings"
	"time"

	"enoki-admin/core/constants"
	"enoki-admin/core/errors"
	"enoki-admin/core/logger"
	"enoki-admin/modules/kiosk/dto"
	"enoki-admin/modules/kiosk/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// pageExpiry is how long an unanswered page stays open
const pageExpiry = 10 * time.Minute

const recentActivityLimit = 20

type PageRepositoryInterface interface {
	Create(ctx context.Context, page *entity.Page) error
	GetById(ctx context.Context, id uuid.UUID) (*entity.Page, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	Complete(ctx context.Context, id uuid.UUID) (bool, error)
	ExpireIfOpen(ctx context.Context, id uuid.UUID) (bool, error)
	RecentActivity(ctx context.Context, limit int) ([]entity.Page, error)
	Metrics(ctx context.Context) (*entity.Metrics, error)
}

type QueueInterface interface {
	Push(ctx context.Context, entry dto.QueueEntry) error
	Remove(ctx context.Context, pageID uuid.UUID) error
	Entries(ctx context.Context) ([]dto.QueueEntry, error)
}

// Enqueuer is the slice of asynq.Client the service needs
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type KioskServiceInterface interface {
	Page(ctx context.Context, req *dto.PageRequest) (*dto.PageResponse, *errors.AppError)
	Complete(ctx context.Context, req *dto.CompletePageRequest) *errors.AppError
	Queue(ctx context.Context) (*dto.QueueResponse, *errors.AppError)
	RecentActivity(ctx context.Context) (*dto.RecentActivityResponse, *errors.AppError)
	Metrics(ctx context.Context) (*dto.MetricsResponse, *errors.AppError)
}

type KioskService struct {
	repo     PageRepositoryInterface
	queue    QueueInterface
	enqueuer Enqueuer
}

func NewKioskService(repo PageRepositoryInterface, queue QueueInterface, enqueuer Enqueuer) *KioskService {
	return &KioskService{repo: repo, queue: queue, enqueuer: enqueuer}
}

func toPageResponse(page *entity.Page) *dto.PageResponse {
	return &dto.PageResponse{
		ID:          page.ID,
		TeacherID:   page.TeacherID,
		TeacherName: page.TeacherName,
		StudentName: page.StudentName,
		Location:    page.Location,
		Reason:      page.Reason,
		Urgency:     page.Urgency,
		Status:      page.Status,
		PagedAt:     page.CreatedAt,
	}
}

// Page persists the request, pushes it onto the live queue, and hands
// dispatch and expiry to the background worker.
func (s *KioskService) Page(ctx context.Context, req *dto.PageRequest) (*dto.PageResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if req.TeacherID == uuid.Nil || strings.TrimSpace(req.TeacherName) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "teacher is required", nil)
	}
	urgency := req.Urgency
	if urgency == "" {
		urgency = entity.UrgencyNormal
	}
	if urgency != entity.UrgencyNormal && urgency != entity.UrgencyHigh {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "unknown urgency level", nil)
	}

	page := &entity.Page{
		TeacherID:   req.TeacherID,
		TeacherName: req.TeacherName,
		StudentName: req.StudentName,
		Location:    req.Location,
		Reason:      req.Reason,
		Urgency:     urgency,
		Status:      entity.StatusPending,
	}
	if err := s.repo.Create(ctx, page); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create page failed", err)
	}
	if page.CreatedAt.IsZero() {
		page.CreatedAt = time.Now()
	}

	entry := dto.QueueEntry{
		PageID:      page.ID,
		TeacherID:   page.TeacherID,
		TeacherName: page.TeacherName,
		StudentName: page.StudentName,
		Location:    page.Location,
		Reason:      page.Reason,
		Urgency:     page.Urgency,
		PagedAt:     page.CreatedAt,
	}
	if err := s.queue.Push(ctx, entry); err != nil {
		// The row is the source of truth; a missing queue entry only costs
		// visibility until the next refresh
		logger.Warn("KioskService:Page:QueuePush", "page_id", page.ID, "error", err)
	}

	dispatchTask, err := NewPageDispatchTask(page.ID)
	if err == nil {
		_, err = s.enqueuer.EnqueueContext(ctx, dispatchTask)
	}
	if err != nil {
		logger.Error("KioskService:Page:EnqueueDispatch", "page_id", page.ID, "error", err)
	}

	expireTask, err := NewPageExpireTask(page.ID)
	if err == nil {
		_, err = s.enqueuer.EnqueueContext(ctx, expireTask, asynq.ProcessIn(pageExpiry))
	}
	if err != nil {
		logger.Error("KioskService:Page:EnqueueExpire", "page_id", page.ID, "error", err)
	}

	logger.Info("KioskService:Page", "page_id", page.ID, "teacher", page.TeacherName, "urgency", page.Urgency)
	return toPageResponse(page), nil
}

func (s *KioskService) Complete(ctx context.Context, req *dto.CompletePageRequest) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	completed, err := s.repo.Complete(ctx, req.PageID)
	if err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "complete page failed", err)
	}
	if !completed {
		return errors.NewAppError(errors.ErrNotFound, "page not open", nil)
	}

	if err := s.queue.Remove(ctx, req.PageID); err != nil {
		logger.Warn("KioskService:Complete:QueueRemove", "page_id", req.PageID, "error", err)
	}
	return nil
}

func (s *KioskService) Queue(ctx context.Context) (*dto.QueueResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	entries, err := s.queue.Entries(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get queue failed", err)
	}
	if entries == nil {
		entries = []dto.QueueEntry{}
	}
	return &dto.QueueResponse{Entries: entries}, nil
}

func (s *KioskService) RecentActivity(ctx context.Context) (*dto.RecentActivityResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	pages, err := s.repo.RecentActivity(ctx, recentActivityLimit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get recent activity failed", err)
	}

	responses := make([]dto.PageResponse, len(pages))
	for i, page := range pages {
		responses[i] = *toPageResponse(&page)
	}
	return &dto.RecentActivityResponse{Pages: responses}, nil
}

func (s *KioskService) Metrics(ctx context.Context) (*dto.MetricsResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	metrics, err := s.repo.Metrics(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get metrics failed", err)
	}
	return &dto.MetricsResponse{
		TotalCallsToday:            metrics.TotalCallsToday,
		TotalCallsThisWeek:         metrics.TotalCallsThisWeek,
		AverageResponseTimeMinutes: metrics.AverageResponseTimeMinutes,
	}, nil
}
