package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"enoki-admin/core/errors"
	"enoki-admin/core/worker"
	"enoki-admin/modules/kiosk/dto"
	"enoki-admin/modules/kiosk/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type fakePageRepo struct {
	pages map[uuid.UUID]*entity.Page
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: map[uuid.UUID]*entity.Page{}}
}

func (f *fakePageRepo) Create(_ context.Context, page *entity.Page) error {
	page.ID = uuid.New()
	page.CreatedAt = time.Now()
	f.pages[page.ID] = page
	return nil
}

func (f *fakePageRepo) GetById(_ context.Context, id uuid.UUID) (*entity.Page, error) {
	return f.pages[id], nil
}

func (f *fakePageRepo) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	f.pages[id].Status = status
	return nil
}

func (f *fakePageRepo) Complete(_ context.Context, id uuid.UUID) (bool, error) {
	page, ok := f.pages[id]
	if !ok || (page.Status != entity.StatusPending && page.Status != entity.StatusDispatched) {
		return false, nil
	}
	page.Status = entity.StatusCompleted
	return true, nil
}

func (f *fakePageRepo) ExpireIfOpen(_ context.Context, id uuid.UUID) (bool, error) {
	page, ok := f.pages[id]
	if !ok || (page.Status != entity.StatusPending && page.Status != entity.StatusDispatched) {
		return false, nil
	}
	page.Status = entity.StatusExpired
	return true, nil
}

func (f *fakePageRepo) RecentActivity(context.Context, int) ([]entity.Page, error) {
	var settled []entity.Page
	for _, page := range f.pages {
		if page.Status == entity.StatusCompleted || page.Status == entity.StatusExpired {
			settled = append(settled, *page)
		}
	}
	return settled, nil
}

func (f *fakePageRepo) Metrics(context.Context) (*entity.Metrics, error) {
	return &entity.Metrics{TotalCallsToday: len(f.pages)}, nil
}

type fakeQueue struct {
	entries map[uuid.UUID]dto.QueueEntry
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{entries: map[uuid.UUID]dto.QueueEntry{}}
}

func (f *fakeQueue) Push(_ context.Context, entry dto.QueueEntry) error {
	f.entries[entry.PageID] = entry
	return nil
}

func (f *fakeQueue) Remove(_ context.Context, pageID uuid.UUID) error {
	delete(f.entries, pageID)
	return nil
}

func (f *fakeQueue) Entries(context.Context) ([]dto.QueueEntry, error) {
	out := make([]dto.QueueEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		out = append(out, entry)
	}
	return out, nil
}

type enqueuedTask struct {
	task *asynq.Task
	opts []asynq.Option
}

type fakeEnqueuer struct {
	tasks []enqueuedTask
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, enqueuedTask{task: task, opts: opts})
	return &asynq.TaskInfo{}, nil
}

type fakeNotifier struct {
	notified []uuid.UUID
}

func (f *fakeNotifier) NotifyPageDispatched(_ context.Context, _, _, _ string, pageID uuid.UUID) error {
	f.notified = append(f.notified, pageID)
	return nil
}

func pageRequest() *dto.PageRequest {
	return &dto.PageRequest{
		TeacherID:   uuid.New(),
		TeacherName: "Ada Lim",
		StudentName: "Ben Tan",
		Location:    "Front Desk",
		Reason:      "Early pickup",
	}
}

func TestPagePersistsAndEnqueues(t *testing.T) {
	repo := newFakePageRepo()
	queue := newFakeQueue()
	enq := &fakeEnqueuer{}
	svc := NewKioskService(repo, queue, enq)

	resp, appErr := svc.Page(context.Background(), pageRequest())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Status != entity.StatusPending {
		t.Fatalf("expected pending status, got %s", resp.Status)
	}
	if resp.Urgency != entity.UrgencyNormal {
		t.Fatalf("expected default urgency, got %s", resp.Urgency)
	}
	if _, ok := queue.entries[resp.ID]; !ok {
		t.Fatal("expected page pushed onto the live queue")
	}

	if len(enq.tasks) != 2 {
		t.Fatalf("expected dispatch and expire tasks, got %d", len(enq.tasks))
	}
	if enq.tasks[0].task.Type() != worker.TypePageDispatch {
		t.Fatalf("expected first task %s, got %s", worker.TypePageDispatch, enq.tasks[0].task.Type())
	}
	if enq.tasks[1].task.Type() != worker.TypePageExpire {
		t.Fatalf("expected second task %s, got %s", worker.TypePageExpire, enq.tasks[1].task.Type())
	}
	if len(enq.tasks[1].opts) == 0 {
		t.Fatal("expected expire task scheduled with a delay")
	}

	var payload PagePayload
	if err := json.Unmarshal(enq.tasks[0].task.Payload(), &payload); err != nil {
		t.Fatalf("bad dispatch payload: %v", err)
	}
	if payload.PageID != resp.ID {
		t.Fatalf("expected payload page id %s, got %s", resp.ID, payload.PageID)
	}
}

func TestPageRejectsMissingTeacher(t *testing.T) {
	svc := NewKioskService(newFakePageRepo(), newFakeQueue(), &fakeEnqueuer{})

	req := pageRequest()
	req.TeacherID = uuid.Nil
	_, appErr := svc.Page(context.Background(), req)
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected %s, got %v", errors.ErrInvalidInput, appErr)
	}
}

func TestPageRejectsUnknownUrgency(t *testing.T) {
	svc := NewKioskService(newFakePageRepo(), newFakeQueue(), &fakeEnqueuer{})

	req := pageRequest()
	req.Urgency = "asap"
	_, appErr := svc.Page(context.Background(), req)
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected %s, got %v", errors.ErrInvalidInput, appErr)
	}
}

func TestCompleteRemovesFromQueue(t *testing.T) {
	repo := newFakePageRepo()
	queue := newFakeQueue()
	svc := NewKioskService(repo, queue, &fakeEnqueuer{})

	resp, _ := svc.Page(context.Background(), pageRequest())

	appErr := svc.Complete(context.Background(), &dto.CompletePageRequest{PageID: resp.ID})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if repo.pages[resp.ID].Status != entity.StatusCompleted {
		t.Fatalf("expected completed status, got %s", repo.pages[resp.ID].Status)
	}
	if _, ok := queue.entries[resp.ID]; ok {
		t.Fatal("expected page removed from the live queue")
	}

	// Completing again reports the page as no longer open
	appErr = svc.Complete(context.Background(), &dto.CompletePageRequest{PageID: resp.ID})
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected %s, got %v", errors.ErrNotFound, appErr)
	}
}

func TestDispatchTaskNotifiesAndMarks(t *testing.T) {
	repo := newFakePageRepo()
	queue := newFakeQueue()
	notifier := &fakeNotifier{}
	svc := NewKioskService(repo, queue, &fakeEnqueuer{})
	handlers := NewTaskHandlers(repo, queue, notifier)

	resp, _ := svc.Page(context.Background(), pageRequest())

	task, err := NewPageDispatchTask(resp.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := handlers.HandlePageDispatch(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.pages[resp.ID].Status != entity.StatusDispatched {
		t.Fatalf("expected dispatched status, got %s", repo.pages[resp.ID].Status)
	}
	if len(notifier.notified) != 1 || notifier.notified[0] != resp.ID {
		t.Fatalf("expected one notification for %s, got %v", resp.ID, notifier.notified)
	}
}

func TestDispatchTaskSkipsSettledPage(t *testing.T) {
	repo := newFakePageRepo()
	queue := newFakeQueue()
	notifier := &fakeNotifier{}
	svc := NewKioskService(repo, queue, &fakeEnqueuer{})
	handlers := NewTaskHandlers(repo, queue, notifier)

	resp, _ := svc.Page(context.Background(), pageRequest())
	_ = svc.Complete(context.Background(), &dto.CompletePageRequest{PageID: resp.ID})

	task, _ := NewPageDispatchTask(resp.ID)
	if err := handlers.HandlePageDispatch(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.pages[resp.ID].Status != entity.StatusCompleted {
		t.Fatal("dispatch must not touch a completed page")
	}
	if len(notifier.notified) != 0 {
		t.Fatal("expected no notification for a settled page")
	}
}

func TestExpireTaskDropsOpenPage(t *testing.T) {
	repo := newFakePageRepo()
	queue := newFakeQueue()
	svc := NewKioskService(repo, queue, &fakeEnqueuer{})
	handlers := NewTaskHandlers(repo, queue, &fakeNotifier{})

	resp, _ := svc.Page(context.Background(), pageRequest())

	task, _ := NewPageExpireTask(resp.ID)
	if err := handlers.HandlePageExpire(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.pages[resp.ID].Status != entity.StatusExpired {
		t.Fatalf("expected expired status, got %s", repo.pages[resp.ID].Status)
	}
	if _, ok := queue.entries[resp.ID]; ok {
		t.Fatal("expected expired page removed from the live queue")
	}
}

func TestExpireTaskLeavesCompletedPage(t *testing.T) {
	repo := newFakePageRepo()
	queue := newFakeQueue()
	svc := NewKioskService(repo, queue, &fakeEnqueuer{})
	handlers := NewTaskHandlers(repo, queue, &fakeNotifier{})

	resp, _ := svc.Page(context.Background(), pageRequest())
	_ = svc.Complete(context.Background(), &dto.CompletePageRequest{PageID: resp.ID})

	task, _ := NewPageExpireTask(resp.ID)
	if err := handlers.HandlePageExpire(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.pages[resp.ID].Status != entity.StatusCompleted {
		t.Fatal("expire must not overwrite a completed page")
	}
}
