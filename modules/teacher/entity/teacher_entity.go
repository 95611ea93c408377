package entity

import (
	"enoki-admin/core/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

type Teacher struct {
	Name string `db:"name"`

	Email string `db:"email"`

	DepartmentID uuid.NullUUID `db:"department_id"`

	// RFIDHash identifies the employee badge; stored hashed, never raw
	RFIDHash string `db:"rfid_hash"`

	// Schedule holds the weekly schedule in wire format as JSONB
	Schedule types.JSONText `db:"schedule"`

	entity.BaseEntity
}

type PaginatedTeacherEntity = entity.Pagination[Teacher]
