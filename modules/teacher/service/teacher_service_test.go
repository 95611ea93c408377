package service

import (
	"context"
	"strings"
	"testing"

	"enoki-admin/core/errors"
	"enoki-admin/core/params"
	scheduledto "enoki-admin/modules/schedule/dto"
	scheduleservice "enoki-admin/modules/schedule/service"
	"enoki-admin/modules/teacher/dto"
	"enoki-admin/modules/teacher/entity"

	"github.com/google/uuid"
)

type fakeTeacherRepo struct {
	created     []*entity.Teacher
	updated     []*entity.Teacher
	emailTaken  bool
	rfidTaken   bool
	getByIdResp *entity.Teacher
}

func (f *fakeTeacherRepo) Create(_ context.Context, t *entity.Teacher) error {
	t.ID = uuid.New()
	f.created = append(f.created, t)
	return nil
}

func (f *fakeTeacherRepo) Update(_ context.Context, t *entity.Teacher, _ uuid.UUID) error {
	f.updated = append(f.updated, t)
	return nil
}

func (f *fakeTeacherRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (f *fakeTeacherRepo) GetById(context.Context, uuid.UUID) (*entity.Teacher, error) {
	return f.getByIdResp, nil
}

func (f *fakeTeacherRepo) GetByRFIDHash(context.Context, string) (*entity.Teacher, error) {
	return nil, nil
}

func (f *fakeTeacherRepo) List(context.Context, params.QueryParams) (*entity.PaginatedTeacherEntity, error) {
	return &entity.PaginatedTeacherEntity{Items: []entity.Teacher{}}, nil
}

func (f *fakeTeacherRepo) ExistsByEmail(context.Context, string, uuid.UUID) (bool, error) {
	return f.emailTaken, nil
}

func (f *fakeTeacherRepo) ExistsByRFIDHash(context.Context, string, uuid.UUID) (bool, error) {
	return f.rfidTaken, nil
}

func allDaysOff() []scheduledto.WireDay {
	days := make([]scheduledto.WireDay, 7)
	for i := range days {
		days[i] = scheduledto.WireDay{DayOff: true}
	}
	return days
}

func newTestService(repo *fakeTeacherRepo) *TeacherService {
	return NewTeacherService(repo, scheduleservice.NewDefaultEngine())
}

func TestCreateTeacherPersistsValidSchedule(t *testing.T) {
	repo := &fakeTeacherRepo{}
	svc := newTestService(repo)

	days := allDaysOff()
	days[0] = scheduledto.WireDay{
		DayOff: false,
		ClassTimes: []scheduledto.WireClassTime{
			{Start: 8 * 3600, End: 9 * 3600},
			{Start: 9 * 3600, End: 10 * 3600},
		},
		BreakTimes: []scheduledto.WireBreakTime{},
	}

	resp, appErr := svc.Create(context.Background(), &dto.TeacherRequest{
		Name:     "Ada Lim",
		Email:    "ada@school.test",
		Schedule: days,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one created teacher, got %d", len(repo.created))
	}
	if resp.ID == uuid.Nil {
		t.Fatal("expected assigned id in response")
	}
	if len(resp.Schedule) != 7 {
		t.Fatalf("expected 7 days in response schedule, got %d", len(resp.Schedule))
	}
}

func TestCreateTeacherRejectsCollidingSchedule(t *testing.T) {
	repo := &fakeTeacherRepo{}
	svc := newTestService(repo)

	days := allDaysOff()
	days[1] = scheduledto.WireDay{
		DayOff: false,
		ClassTimes: []scheduledto.WireClassTime{
			{Start: 9 * 3600, End: 10 * 3600},
			{Start: 9*3600 + 1800, End: 10*3600 + 1800},
		},
		BreakTimes: []scheduledto.WireBreakTime{},
	}

	_, appErr := svc.Create(context.Background(), &dto.TeacherRequest{
		Name:     "Ada Lim",
		Email:    "ada@school.test",
		Schedule: days,
	})
	if appErr == nil {
		t.Fatal("expected error for colliding schedule")
	}
	if appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected code %s, got %s", errors.ErrInvalidInput, appErr.Code)
	}
	if !strings.Contains(appErr.Message, "collision") {
		t.Fatalf("expected collision message, got %q", appErr.Message)
	}
	if len(repo.created) != 0 {
		t.Fatal("colliding schedule must never reach the repository")
	}
}

func TestUpdateTeacherRejectsInvertedSlot(t *testing.T) {
	repo := &fakeTeacherRepo{}
	svc := newTestService(repo)

	days := allDaysOff()
	days[2] = scheduledto.WireDay{
		DayOff:     false,
		ClassTimes: []scheduledto.WireClassTime{{Start: 10 * 3600, End: 9 * 3600}},
		BreakTimes: []scheduledto.WireBreakTime{},
	}

	appErr := svc.Update(context.Background(), &dto.TeacherRequest{
		Name:     "Ada Lim",
		Email:    "ada@school.test",
		Schedule: days,
	}, uuid.New())
	if appErr == nil {
		t.Fatal("expected error for inverted slot")
	}
	if len(repo.updated) != 0 {
		t.Fatal("invalid schedule must never reach the repository")
	}
}

func TestCreateTeacherRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeTeacherRepo{emailTaken: true}
	svc := newTestService(repo)

	_, appErr := svc.Create(context.Background(), &dto.TeacherRequest{
		Name:  "Ada Lim",
		Email: "ada@school.test",
	})
	if appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Fatalf("expected %s, got %v", errors.ErrAlreadyExists, appErr)
	}
}

func TestCheckEmailReportsAvailability(t *testing.T) {
	repo := &fakeTeacherRepo{}
	svc := newTestService(repo)

	resp, appErr := svc.CheckEmail(context.Background(), &dto.CheckEmailRequest{Email: "new@school.test"})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !resp.Available {
		t.Fatal("expected email reported available")
	}

	repo.emailTaken = true
	resp, appErr = svc.CheckEmail(context.Background(), &dto.CheckEmailRequest{Email: "taken@school.test"})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Available {
		t.Fatal("expected email reported taken")
	}
}

func TestGetTeacherByIdNotFound(t *testing.T) {
	repo := &fakeTeacherRepo{}
	svc := newTestService(repo)

	_, appErr := svc.GetById(context.Background(), uuid.New())
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected %s, got %v", errors.ErrNotFound, appErr)
	}
}
