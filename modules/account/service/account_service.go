package service

import (
	"context"
	"time"

	"enoki-admin/core/constants"
	"enoki-admin/core/errors"
	"enoki-admin/core/logger"
	"enoki-admin/core/params"
	"enoki-admin/core/utils"
	"enoki-admin/modules/account/dto"
	"enoki-admin/modules/account/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetById(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedAccountEntity, error)
}

type AccountServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Create(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, *errors.AppError)
	Change(ctx context.Context, req *dto.ChangeAccountRequest, id uuid.UUID) *errors.AppError
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
	List(ctx context.Context, params params.QueryParams) (*dto.PaginatedAccountResponse, *errors.AppError)
}

type AccountService struct {
	repo      AccountRepositoryInterface
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAccountService(repo AccountRepositoryInterface, jwtSecret string, tokenTTL time.Duration) *AccountService {
	return &AccountService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func validRole(role string) bool {
	switch role {
	case constants.RoleAdmin, constants.RoleStaff, constants.RoleFrontdesk:
		return true
	}
	return false
}

func toAccountResponse(account *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		ID:        account.ID,
		Username:  account.Username,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func (s *AccountService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	account, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "login failed", err)
	}
	// Same error for unknown user and bad password
	if account == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid credentials", nil)
	}

	token, err := utils.GenerateToken(account.ID, account.Role, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "token generation failed", err)
	}

	logger.Info("AccountService:Login", "account_id", account.ID, "role", account.Role)
	return &dto.LoginResponse{
		Token:   token,
		Account: *toAccountResponse(account),
	}, nil
}

func (s *AccountService) Create(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if !validRole(req.Role) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid role", nil)
	}

	existing, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "check username failed", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "username already in use", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "password hashing failed", err)
	}

	account := &entity.Account{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create account failed", err)
	}
	return toAccountResponse(account), nil
}

// Change updates any subset of username, password, and role on an account
func (s *AccountService) Change(ctx context.Context, req *dto.ChangeAccountRequest, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	account, err := s.repo.GetById(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get account failed", err)
	}
	if account == nil {
		return errors.NewAppError(errors.ErrNotFound, "account not found", nil)
	}

	if req.Username != "" && req.Username != account.Username {
		existing, err := s.repo.GetByUsername(ctx, req.Username)
		if err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "check username failed", err)
		}
		if existing != nil {
			return errors.NewAppError(errors.ErrAlreadyExists, "username already in use", nil)
		}
		account.Username = req.Username
	}
	if req.Role != "" {
		if !validRole(req.Role) {
			return errors.NewAppError(errors.ErrInvalidInput, "invalid role", nil)
		}
		account.Role = req.Role
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return errors.NewAppError(errors.ErrInternalServer, "password hashing failed", err)
		}
		account.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, account, id); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update account failed", err)
	}
	return nil
}

func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete account failed", err)
	}
	return nil
}

func (s *AccountService) List(ctx context.Context, params params.QueryParams) (*dto.PaginatedAccountResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	accounts, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get accounts failed", err)
	}

	items := make([]dto.AccountResponse, len(accounts.Items))
	for i, account := range accounts.Items {
		items[i] = *toAccountResponse(&account)
	}

	totalPages := 0
	if accounts.PageSize > 0 {
		totalPages = (accounts.TotalItems + accounts.PageSize - 1) / accounts.PageSize
	}

	return &dto.PaginatedAccountResponse{
		Items:      items,
		TotalItems: accounts.TotalItems,
		TotalPages: totalPages,
		PageNumber: accounts.PageNumber,
		PageSize:   accounts.PageSize,
	}, nil
}
