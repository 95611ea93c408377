package service

import (
	"context"
	"strings"

	"enoki-admin/core/constants"
	"enoki-admin/core/errors"
	"enoki-admin/core/logger"
	"enoki-admin/core/params"
	scheduledto "enoki-admin/modules/schedule/dto"
	scheduleservice "enoki-admin/modules/schedule/service"
	"enoki-admin/modules/teacher/dto"
	"enoki-admin/modules/teacher/entity"
	"enoki-admin/modules/teacher/mapper"

	"github.com/google/uuid"
)

type TeacherRepositoryInterface interface {
	Create(ctx context.Context, teacher *entity.Teacher) error
	Update(ctx context.Context, teacher *entity.Teacher, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetById(ctx context.Context, id uuid.UUID) (*entity.Teacher, error)
	GetByRFIDHash(ctx context.Context, rfidHash string) (*entity.Teacher, error)
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedTeacherEntity, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	ExistsByRFIDHash(ctx context.Context, rfidHash string, excludeID uuid.UUID) (bool, error)
}

type TeacherServiceInterface interface {
	Create(ctx context.Context, req *dto.TeacherRequest) (*dto.TeacherResponse, *errors.AppError)
	Update(ctx context.Context, req *dto.TeacherRequest, id uuid.UUID) *errors.AppError
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
	GetById(ctx context.Context, id uuid.UUID) (*dto.TeacherResponse, *errors.AppError)
	List(ctx context.Context, params params.QueryParams) (*dto.PaginatedTeacherResponse, *errors.AppError)
	CheckEmail(ctx context.Context, req *dto.CheckEmailRequest) (*dto.CheckResponse, *errors.AppError)
	CheckRFID(ctx context.Context, req *dto.CheckRFIDRequest) (*dto.CheckResponse, *errors.AppError)
}

type TeacherService struct {
	repo   TeacherRepositoryInterface
	engine *scheduleservice.Engine
}

func NewTeacherService(repo TeacherRepositoryInterface, engine *scheduleservice.Engine) *TeacherService {
	return &TeacherService{repo: repo, engine: engine}
}

// validateSchedule is the hard save gate: a teacher record never persists a
// schedule that fails validation.
func (s *TeacherService) validateSchedule(days []scheduledto.WireDay) *errors.AppError {
	if len(days) == 0 {
		return nil // no schedule submitted, stored as all days off
	}

	ws, err := scheduledto.FromWireFormat(days)
	if err != nil {
		return errors.NewAppError(errors.ErrDataFormat, err.Error(), err)
	}
	if validationErrors := s.engine.Validate(ws); len(validationErrors) > 0 {
		return errors.NewAppError(errors.ErrInvalidInput, strings.Join(validationErrors, "; "), nil)
	}
	return nil
}

func (s *TeacherService) checkDuplicates(ctx context.Context, email, rfidHash string, excludeID uuid.UUID) *errors.AppError {
	exists, err := s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "check email failed", err)
	}
	if exists {
		return errors.NewAppError(errors.ErrAlreadyExists, "email already in use", nil)
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

func (s *TeacherService) Create(ctx context.Context, req *dto.TeacherRequest) (*dto.TeacherResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.validateSchedule(req.Schedule); appErr != nil {
		return nil, appErr
	}
	if appErr := s.checkDuplicates(ctx, req.Email, req.RFIDHash, uuid.Nil); appErr != nil {
		return nil, appErr
	}

	teacher, err := mapper.ToTeacherEntity(req)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrDataFormat, "invalid schedule payload", err)
	}

	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create teacher failed", err)
	}

	logger.Info("TeacherService:Create", "teacher_id", teacher.ID, "email", teacher.Email)
	return mapper.ToTeacherResponse(teacher), nil
}

func (s *TeacherService) Update(ctx context.Context, req *dto.TeacherRequest, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.validateSchedule(req.Schedule); appErr != nil {
		return appErr
	}
	if appErr := s.checkDuplicates(ctx, req.Email, req.RFIDHash, id); appErr != nil {
		return appErr
	}

	teacher, err := mapper.ToTeacherEntity(req)
	if err != nil {
		return errors.NewAppError(errors.ErrDataFormat, "invalid schedule payload", err)
	}

	if err := s.repo.Update(ctx, teacher, id); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update teacher failed", err)
	}
	return nil
}

func (s *TeacherService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete teacher failed", err)
	}
	return nil
}

func (s *TeacherService) GetById(ctx context.Context, id uuid.UUID) (*dto.TeacherResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	teacher, err := s.repo.GetById(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get teacher failed", err)
	}
	if teacher == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "teacher not found", nil)
	}
	return mapper.ToTeacherResponse(teacher), nil
}

func (s *TeacherService) List(ctx context.Context, params params.QueryParams) (*dto.PaginatedTeacherResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	teachers, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get teachers failed", err)
	}
	return mapper.ToTeacherPaginationResponse(teachers), nil
}

func (s *TeacherService) CheckEmail(ctx context.Context, req *dto.CheckEmailRequest) (*dto.CheckResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	excludeID := uuid.Nil
	if req.ExcludeID != nil {
		excludeID = *req.ExcludeID
	}
	exists, err := s.repo.ExistsByEmail(ctx, req.Email, excludeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "check email failed", err)
	}
	return &dto.CheckResponse{Available: !exists}, nil
}

func (s *TeacherService) CheckRFID(ctx context.Context, req *dto.CheckRFIDRequest) (*dto.CheckResponse, *errors.AppError) {
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
