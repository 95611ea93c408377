package entity

import (
	"enoki-admin/core/entity"

	"github.com/google/uuid"
)

type Course struct {
	Code string `db:"code"`

	Title string `db:"title"`

	DepartmentID uuid.NullUUID `db:"department_id"`

	Units int `db:"units"`

	entity.BaseEntity
}

type PaginatedCourseEntity = entity.Pagination[Course]
