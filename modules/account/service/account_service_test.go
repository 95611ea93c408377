package service

import (
	"context"
	"testing"
	"time"

	"enoki-admin/core/constants"
	"enoki-admin/core/errors"
	"enoki-admin/core/params"
	"enoki-admin/modules/account/dto"
	"enoki-admin/modules/account/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type fakeAccountRepo struct {
	byUsername map[string]*entity.Account
	byId       map[uuid.UUID]*entity.Account
	updated    []*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byUsername: map[string]*entity.Account{},
		byId:       map[uuid.UUID]*entity.Account{},
	}
}

func (f *fakeAccountRepo) add(username, password, role string) *entity.Account {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	account := &entity.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	account.ID = uuid.New()
	f.byUsername[username] = account
	f.byId[account.ID] = account
	return account
}

func (f *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	account.ID = uuid.New()
	f.byUsername[account.Username] = account
	f.byId[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *entity.Account, _ uuid.UUID) error {
	f.updated = append(f.updated, account)
	return nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byId, id)
	return nil
}

func (f *fakeAccountRepo) GetById(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	return f.byId[id], nil
}

func (f *fakeAccountRepo) GetByUsername(_ context.Context, username string) (*entity.Account, error) {
	return f.byUsername[username], nil
}

func (f *fakeAccountRepo) List(context.Context, params.QueryParams) (*entity.PaginatedAccountEntity, error) {
	items := make([]entity.Account, 0, len(f.byId))
	for _, account := range f.byId {
		items = append(items, *account)
	}
	return &entity.PaginatedAccountEntity{Items: items, TotalItems: len(items), PageNumber: 1, PageSize: 20}, nil
}

func newAccountTestService(repo *fakeAccountRepo) *AccountService {
	return NewAccountService(repo, "test-secret", time.Hour)
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.add("frontdesk1", "s3cret", constants.RoleFrontdesk)
	svc := newAccountTestService(repo)

	resp, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "frontdesk1", Password: "s3cret"})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.Token == "" {
		t.Fatal("expected a signed token")
	}
	if resp.Account.Role != constants.RoleFrontdesk {
		t.Fatalf("expected role %s, got %s", constants.RoleFrontdesk, resp.Account.Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.add("frontdesk1", "s3cret", constants.RoleFrontdesk)
	svc := newAccountTestService(repo)

	cases := []dto.LoginRequest{
		{Username: "frontdesk1", Password: "wrong"},
		{Username: "nobody", Password: "s3cret"},
	}
	for _, req := range cases {
		_, appErr := svc.Login(context.Background(), &req)
		if appErr == nil || appErr.Code != errors.ErrUnauthorized {
			t.Fatalf("expected %s for %q, got %v", errors.ErrUnauthorized, req.Username, appErr)
		}
	}
}

func TestCreateAccountRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.add("admin1", "s3cret", constants.RoleAdmin)
	svc := newAccountTestService(repo)

	_, appErr := svc.Create(context.Background(), &dto.CreateAccountRequest{
		Username: "admin1",
		Password: "other",
		Role:     constants.RoleStaff,
	})
	if appErr == nil || appErr.Code != errors.ErrAlreadyExists {
		t.Fatalf("expected %s, got %v", errors.ErrAlreadyExists, appErr)
	}
}

func TestCreateAccountRejectsUnknownRole(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountTestService(repo)

	_, appErr := svc.Create(context.Background(), &dto.CreateAccountRequest{
		Username: "new",
		Password: "pw",
		Role:     "superuser",
	})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected %s, got %v", errors.ErrInvalidInput, appErr)
	}
}

func TestChangeAccountUpdatesOnlyProvidedFields(t *testing.T) {
	repo := newFakeAccountRepo()
	account := repo.add("staff1", "s3cret", constants.RoleStaff)
	svc := newAccountTestService(repo)

	appErr := svc.Change(context.Background(), &dto.ChangeAccountRequest{Role: constants.RoleAdmin}, account.ID)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(repo.updated))
	}
	changed := repo.updated[0]
	if changed.Role != constants.RoleAdmin {
		t.Fatalf("expected role changed to admin, got %s", changed.Role)
	}
	if changed.Username != "staff1" {
		t.Fatalf("expected username untouched, got %s", changed.Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(changed.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatal("expected password untouched")
	}
}

func TestChangeAccountNotFound(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountTestService(repo)

	appErr := svc.Change(context.Background(), &dto.ChangeAccountRequest{Role: constants.RoleAdmin}, uuid.New())
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("expected %s, got %v", errors.ErrNotFound, appErr)
	}
}
