package entity

import (
	"enoki-admin/core/entity"
)

type Student struct {
	// StudentID is the school-issued identifier, distinct from the row id
	StudentID string `db:"student_id"`

	Name string `db:"name"`

	Email string `db:"email"`

	ClassName string `db:"class_name"`

	RFIDHash string `db:"rfid_hash"`

	entity.BaseEntity
}

type PaginatedStudentEntity = entity.Pagination[Student]
