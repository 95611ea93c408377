package dto

import (
	"time"

	scheduledto "enoki-admin/modules/schedule/dto"

	"github.com/google/uuid"
)

type TeacherRequest struct {
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	DepartmentID *uuid.UUID            `json:"departmentId,omitempty"`
	RFIDHash     string                `json:"employeeRfidHash"`
	Schedule     []scheduledto.WireDay `json:"schedule"`
}

type TeacherResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	DepartmentID *uuid.UUID            `json:"departmentId,omitempty"`
	RFIDHash     string                `json:"employeeRfidHash"`
	Schedule     []scheduledto.WireDay `json:"schedule"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type PaginatedTeacherResponse struct {
	Items      []TeacherResponse `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
	PageNumber int               `json:"pageNumber"`
	PageSize   int               `json:"pageSize"`
}

// CheckEmailRequest probes for duplicate emails while the form is open.
// ExcludeID skips the record being edited.
type CheckEmailRequest struct {
	Email     string     `json:"email"`
	ExcludeID *uuid.UUID `json:"excludeId,omitempty"`
}

type CheckRFIDRequest struct {
	RFIDHash  string     `json:"rfidHash"`
	ExcludeID *uuid.UUID `json:"excludeId,omitempty"`
}

type CheckResponse struct {
	Available bool `json:"available"`
}
