package entity

import (
	"enoki-admin/core/entity"
)

type Department struct {
	Name string `db:"name"`

	// Slug is URL-safe, derived from the name on every save
	Slug string `db:"slug"`

	Description string `db:"description"`

	entity.BaseEntity
}

type PaginatedDepartmentEntity = entity.Pagination[Department]
