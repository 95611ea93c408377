package mapper

import (
	"enoki-admin/modules/department/dto"
	"enoki-admin/modules/department/entity"

	"github.com/gosimple/slug"
)

func ToDepartmentEntity(req *dto.DepartmentRequest) *entity.Department {
	return &entity.Department{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
	}
}

func ToDepartmentResponse(department *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Slug:        department.Slug,
		Description: department.Description,
		CreatedAt:   department.CreatedAt,
		UpdatedAt:   department.UpdatedAt,
	}
}

func ToDepartmentPaginationResponse(paginated *entity.PaginatedDepartmentEntity) *dto.PaginatedDepartmentResponse {
	if paginated == nil {
		return &dto.PaginatedDepartmentResponse{
			Items: []dto.DepartmentResponse{},
		}
	}

	items := make([]dto.DepartmentResponse, len(paginated.Items))
	for i, department := range paginated.Items {
		items[i] = *ToDepartmentResponse(&department)
	}

	totalPages := 0
	if paginated.PageSize > 0 {
		totalPages = (paginated.TotalItems + paginated.PageSize - 1) / paginated.PageSize
	}

	return &dto.PaginatedDepartmentResponse{
		Items:      items,
		TotalItems: paginated.TotalItems,
		TotalPages: totalPages,
		PageNumber: paginated.PageNumber,
		PageSize:   paginated.PageSize,
	}
}
