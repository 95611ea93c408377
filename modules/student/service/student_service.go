package service

import (
	"context"

	"enoki-admin/core/constants"
	"enoki-admin/core/errors"
	"enoki-admin/core/params"
	"enoki-admin/modules/student/dto"
	"enoki-admin/modules/student/entity"
	"enoki-admin/modules/student/mapper"

	"github.com/google/uuid"
)

type StudentRepositoryInterface interface {
	Create(ctx context.Context, student *entity.Student) error
	Update(ctx context.Context, student *entity.Student, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetById(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedStudentEntity, error)
	ExistsByStudentID(ctx context.Context, studentID string, excludeID uuid.UUID) (bool, error)
	ExistsByRFIDHash(ctx context.Context, rfidHash string, excludeID uuid.UUID) (bool, error)
}

type StudentServiceInterface interface {
	Create(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, *errors.AppError)
	Update(ctx context.Context, req *dto.StudentRequest, id uuid.UUID) *errors.AppError
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
	GetById(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, *errors.AppError)
	List(ctx context.Context, params params.QueryParams) (*dto.PaginatedStudentResponse, *errors.AppError)
	CheckStudentID(ctx context.Context, req *dto.CheckStudentIDRequest) (*dto.CheckResponse, *errors.AppError)
	CheckRFID(ctx context.Context, req *dto.CheckRFIDRequest) (*dto.CheckResponse, *errors.AppError)
}

type StudentService struct {
	repo StudentRepositoryInterface
}

func NewStudentService(repo StudentRepositoryInterface) *StudentService {
	return &StudentService{repo: repo}
}

func (s *StudentService) checkDuplicates(ctx context.Context, studentID, rfidHash string, excludeID uuid.UUID) *errors.AppError {
	exists, err := s.repo.ExistsByStudentID(ctx, studentID, excludeID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "check student id failed", err)
	}
	if exists {
		return errors.NewAppError(errors.ErrAlreadyExists, "student id already in use", nil)
	}

	if rfidHash != "" {
		exists, err = s.repo.ExistsByRFIDHash(ctx, rfidHash, excludeID)
		if err != nil {
			return errors.NewAppError(errors.ErrGetFailed, "check rfid failed", err)
		}
		if exists {
			return errors.NewAppError(errors.ErrAlreadyExists, "rfid badge already assigned", nil)
		}
	}
	return nil
}

func (s *StudentService) Create(ctx context.Context, req *dto.StudentRequest) (*dto.StudentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.checkDuplicates(ctx, req.StudentID, req.RFIDHash, uuid.Nil); appErr != nil {
		return nil, appErr
	}

	student := mapper.ToStudentEntity(req)
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create student failed", err)
	}
	return mapper.ToStudentResponse(student), nil
}

func (s *StudentService) Update(ctx context.Context, req *dto.StudentRequest, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.checkDuplicates(ctx, req.StudentID, req.RFIDHash, id); appErr != nil {
		return appErr
	}

	student := mapper.ToStudentEntity(req)
	if err := s.repo.Update(ctx, student, id); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update student failed", err)
	}
	return nil
}

func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete student failed", err)
	}
	return nil
}

func (s *StudentService) GetById(ctx context.Context, id uuid.UUID) (*dto.StudentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	student, err := s.repo.GetById(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get student failed", err)
	}
	if student == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "student not found", nil)
	}
	return mapper.ToStudentResponse(student), nil
}

func (s *StudentService) List(ctx context.Context, params params.QueryParams) (*dto.PaginatedStudentResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	students, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get students failed", err)
	}
	return mapper.ToStudentPaginationResponse(students), nil
}

func (s *StudentService) CheckStudentID(ctx context.Context, req *dto.CheckStudentIDRequest) (*dto.CheckResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	excludeID := uuid.Nil
	if req.ExcludeID != nil {
		excludeID = *req.ExcludeID
	}
	exists, err := s.repo.ExistsByStudentID(ctx, req.StudentID, excludeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "check student id failed", err)
	}
	return &dto.CheckResponse{Available: !exists}, nil
}

func (s *StudentService) CheckRFID(ctx context.Context, req *dto.CheckRFIDRequest) (*dto.CheckResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	excludeID := uuid.Nil
	if req.ExcludeID != nil {
		excludeID = *req.ExcludeID
	}
	exists, err := s.repo.ExistsByRFIDHash(ctx, req.RFIDHash, excludeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "check rfid failed", err)
	}
	return &dto.CheckResponse{Available: !exists}, nil
}
