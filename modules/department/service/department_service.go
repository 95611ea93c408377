package service

import (
	"context"

	"enoki-admin/core/constants"
	"enoki-admin/core/errors"
	"enoki-admin/core/params"
	"enoki-admin/modules/department/dto"
	"enoki-admin/modules/department/entity"
	"enoki-admin/modules/department/mapper"

	"github.com/google/uuid"
)

type DepartmentRepositoryInterface interface {
	Create(ctx context.Context, department *entity.Department) error
	Update(ctx context.Context, department *entity.Department, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetById(ctx context.Context, id uuid.UUID) (*entity.Department, error)
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedDepartmentEntity, error)
}

type DepartmentServiceInterface interface {
	Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.DepartmentResponse, *errors.AppError)
	Update(ctx context.Context, req *dto.DepartmentRequest, id uuid.UUID) *errors.AppError
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
	GetById(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, *errors.AppError)
	List(ctx context.Context, params params.QueryParams) (*dto.PaginatedDepartmentResponse, *errors.AppError)
}

type DepartmentService struct {
	repo DepartmentRepositoryInterface
}

func NewDepartmentService(repo DepartmentRepositoryInterface) *DepartmentService {
	return &DepartmentService{repo: repo}
}

func (s *DepartmentService) Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.DepartmentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	department := mapper.ToDepartmentEntity(req)
	if err := s.repo.Create(ctx, department); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create department failed", err)
	}
	return mapper.ToDepartmentResponse(department), nil
}

func (s *DepartmentService) Update(ctx context.Context, req *dto.DepartmentRequest, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	department := mapper.ToDepartmentEntity(req)
	if err := s.repo.Update(ctx, department, id); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update department failed", err)
	}
	return nil
}

func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete department failed", err)
	}
	return nil
}

func (s *DepartmentService) GetById(ctx context.Context, id uuid.UUID) (*dto.DepartmentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	department, err := s.repo.GetById(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get department failed", err)
	}
	if department == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "department not found", nil)
	}
	return mapper.ToDepartmentResponse(department), nil
}

func (s *DepartmentService) List(ctx context.Context, params params.QueryParams) (*dto.PaginatedDepartmentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	departments, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get departments failed", err)
	}
	return mapper.ToDepartmentPaginationResponse(departments), nil
}
