package mapper

import (
	"enoki-admin/modules/student/dto"
	"enoki-admin/modules/student/entity"
)

func ToStudentEntity(req *dto.StudentRequest) *entity.Student {
	return &entity.Student{
		StudentID: req.StudentID,
		Name:      req.Name,
		Email:     req.Email,
		ClassName: req.ClassName,
		RFIDHash:  req.RFIDHash,
	}
}

func ToStudentResponse(student *entity.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:        student.ID,
		StudentID: student.StudentID,
		Name:      student.Name,
		Email:     student.Email,
		ClassName: student.ClassName,
		RFIDHash:  student.RFIDHash,
		CreatedAt: student.CreatedAt,
		UpdatedAt: student.UpdatedAt,
	}
}

func ToStudentPaginationResponse(paginated *entity.PaginatedStudentEntity) *dto.PaginatedStudentResponse {
	if paginated == nil {
		return &dto.PaginatedStudentResponse{
			Items: []dto.StudentResponse{},
		}
	}

	items := make([]dto.StudentResponse, len(paginated.Items))
	for i, student := range paginated.Items {
		items[i] = *ToStudentResponse(&student)
	}

	totalPages := 0
	if paginated.PageSize > 0 {
		totalPages = (paginated.TotalItems + paginated.PageSize - 1) / paginated.PageSize
	}

	return &dto.PaginatedStudentResponse{
		Items:      items,
		TotalItems: paginated.TotalItems,
		TotalPages: totalPages,
		PageNumber: paginated.PageNumber,
		PageSize:   paginated.PageSize,
	}
}
