package dto

import (
	"time"

	"github.com/google/uuid"
)

type CourseRequest struct {
	Code         string     `json:"code"`
	Title        string     `json:"title"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
	Units        int        `json:"units"`
}

type CourseResponse struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	Title        string     `json:"title"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
	Units        int        `json:"units"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type PaginatedCourseResponse struct {
	Items      []CourseResponse `json:"items"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
	PageNumber int              `json:"pageNumber"`
	PageSize   int              `json:"pageSize"`
}
