package service

import (
	"context"

	"enoki-admin/core/constants"
	"enoki-admin/core/errors"
	"enoki-admin/core/params"
	"enoki-admin/modules/course/dto"
	"enoki-admin/modules/course/entity"
	"enoki-admin/modules/course/mapper"

	"github.com/google/uuid"
)

type CourseRepositoryInterface interface {
	Create(ctx context.Context, course *entity.Course) error
	Update(ctx context.Context, course *entity.Course, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetById(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedCourseEntity, error)
}

type CourseServiceInterface interface {
	Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, *errors.AppError)
	Update(ctx context.Context, req *dto.CourseRequest, id uuid.UUID) *errors.AppError
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
	GetById(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, *errors.AppError)
	List(ctx context.Context, params params.QueryParams) (*dto.PaginatedCourseResponse, *errors.AppError)
}

type CourseService struct {
	repo CourseRepositoryInterface
}

func NewCourseService(repo CourseRepositoryInterface) *CourseService {
	return &CourseService{repo: repo}
}

func (s *CourseService) Create(ctx context.Context, req *dto.CourseRequest) (*dto.CourseResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	course := mapper.ToCourseEntity(req)
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create course failed", err)
	}
	return mapper.ToCourseResponse(course), nil
}

func (s *CourseService) Update(ctx context.Context, req *dto.CourseRequest, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	course := mapper.ToCourseEntity(req)
	if err := s.repo.Update(ctx, course, id); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update course failed", err)
	}
	return nil
}

func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete course failed", err)
	}
	return nil
}

func (s *CourseService) GetById(ctx context.Context, id uuid.UUID) (*dto.CourseResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	course, err := s.repo.GetById(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get course failed", err)
	}
	if course == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "course not found", nil)
	}
	return mapper.ToCourseResponse(course), nil
}

func (s *CourseService) List(ctx context.Context, params params.QueryParams) (*dto.PaginatedCourseResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	courses, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get courses failed", err)
	}
	return mapper.ToCoursePaginationResponse(courses), nil
}
