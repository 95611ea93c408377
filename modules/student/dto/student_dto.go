package dto

import (
	"time"

	"github.com/google/uuid"
)

type StudentRequest struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ClassName string `json:"class"`
	RFIDHash  string `json:"studentRfidHash"`
}

type StudentResponse struct {
	ID        uuid.UUID `json:"id"`
	StudentID string    `json:"studentId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ClassName string    `json:"class"`
	RFIDHash  string    `json:"studentRfidHash"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PaginatedStudentResponse struct {
	Items      []StudentResponse `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
	PageNumber int               `json:"pageNumber"`
	PageSize   int               `json:"pageSize"`
}

type CheckStudentIDRequest struct {
	StudentID string     `json:"studentId"`
	ExcludeID *uuid.UUID `json:"excludeId,omitempty"`
}

type CheckRFIDRequest struct {
	RFIDHash  string     `json:"rfidHash"`
	ExcludeID *uuid.UUID `json:"excludeId,omitempty"`
}

type CheckResponse struct {
	Available bool `json:"available"`
}
