package dto

import (
	"time"

	"github.com/google/uuid"
)

type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DepartmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PaginatedDepartmentResponse struct {
	Items      []DepartmentResponse `json:"items"`
	TotalItems int                  `json:"totalItems"`
	TotalPages int                  `json:"totalPages"`
	PageNumber int                  `json:"pageNumber"`
	PageSize   int                  `json:"pageSize"`
}
