package mapper

import (
	"enoki-admin/modules/course/dto"
	"enoki-admin/modules/course/entity"

	"github.com/google/uuid"
)

func ToCourseEntity(req *dto.CourseRequest) *entity.Course {
	course := &entity.Course{
		Code:  req.Code,
		Title: req.Title,
		Units: req.Units,
	}
	if req.DepartmentID != nil {
		course.DepartmentID = uuid.NullUUID{UUID: *req.DepartmentID, Valid: true}
	}
	return course
}

func ToCourseResponse(course *entity.Course) *dto.CourseResponse {
	response := &dto.CourseResponse{
		ID:        course.ID,
		Code:      course.Code,
		Title:     course.Title,
		Units:     course.Units,
		CreatedAt: course.CreatedAt,
		UpdatedAt: course.UpdatedAt,
	}
	if course.DepartmentID.Valid {
		id := course.DepartmentID.UUID
		response.DepartmentID = &id
	}
	return response
}

func ToCoursePaginationResponse(paginated *entity.PaginatedCourseEntity) *dto.PaginatedCourseResponse {
	if paginated == nil {
		return &dto.PaginatedCourseResponse{
			Items: []dto.CourseResponse{},
		}
	}

	items := make([]dto.CourseResponse, len(paginated.Items))
	for i, course := range paginated.Items {
		items[i] = *ToCourseResponse(&course)
	}

	totalPages := 0
	if paginated.PageSize > 0 {
		totalPages = (paginated.TotalItems + paginated.PageSize - 1) / paginated.PageSize
	}

	return &dto.PaginatedCourseResponse{
		Items:      items,
		TotalItems: paginated.TotalItems,
		TotalPages: totalPages,
		PageNumber: paginated.PageNumber,
		PageSize:   paginated.PageSize,
	}
}
