package mapper

import (
	"encoding/json"

	scheduledto "enoki-admin/modules/schedule/dto"
	"enoki-admin/modules/teacher/dto"
	"enoki-admin/modules/teacher/entity"

	"github.com/google/uuid"
)

func ToTeacherEntity(req *dto.TeacherRequest) (*entity.Teacher, error) {
	scheduleJSON, err := json.Marshal(req.Schedule)
	if err != nil {
		return nil, err
	}

	teacher := &entity.Teacher{
		Name:     req.Name,
		Email:    req.Email,
		RFIDHash: req.RFIDHash,
		Schedule: scheduleJSON,
	}
	if req.DepartmentID != nil {
		teacher.DepartmentID = uuid.NullUUID{UUID: *req.DepartmentID, Valid: true}
	}
	return teacher, nil
}

func ToTeacherResponse(teacher *entity.Teacher) *dto.TeacherResponse {
	response := &dto.TeacherResponse{
		ID:        teacher.ID,
		Name:      teacher.Name,
		Email:     teacher.Email,
		RFIDHash:  teacher.RFIDHash,
		CreatedAt: teacher.CreatedAt,
		UpdatedAt: teacher.UpdatedAt,
	}
	if teacher.DepartmentID.Valid {
		id := teacher.DepartmentID.UUID
		response.DepartmentID = &id
	}

	// A row written before the schedule column existed decodes to all days off
	var days []scheduledto.WireDay
	if len(teacher.Schedule) > 0 {
		if err := json.Unmarshal(teacher.Schedule, &days); err != nil {
			days = nil
		}
	}
	if days == nil {
		days = make([]scheduledto.WireDay, 7)
		for i := range days {
			days[i] = scheduledto.WireDay{DayOff: true}
		}
	}
	response.Schedule = days

	return response
}

func ToTeacherPaginationResponse(paginated *entity.PaginatedTeacherEntity) *dto.PaginatedTeacherResponse {
	if paginated == nil {
		return &dto.PaginatedTeacherResponse{
			Items: []dto.TeacherResponse{},
		}
	}

	items := make([]dto.TeacherResponse, len(paginated.Items))
	for i, teacher := range paginated.Items {
		items[i] = *ToTeacherResponse(&teacher)
	}

	totalPages := 0
	if paginated.PageSize > 0 {
		totalPages = (paginated.TotalItems + paginated.PageSize - 1) / paginated.PageSize
	}

	return &dto.PaginatedTeacherResponse{
		Items:      items,
		TotalItems: paginated.TotalItems,
		TotalPages: totalPages,
		PageNumber: paginated.PageNumber,
		PageSize:   paginated.PageSize,
	}
}
