package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"enoki-admin/core/database"
	"enoki-admin/core/logger"
	"enoki-admin/core/params"
	"enoki-admin/modules/department/entity"

	"github.com/google/uuid"
)

type DepartmentRepository struct {
	DB database.IDatabase
}

func NewDepartmentRepository(db database.IDatabase) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, department *entity.Department) error {
	query := `
		INSERT INTO departments (name, slug, description)
		VALUES (:name, :slug, :description)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, department)
	if err != nil {
		logger.Error("DepartmentRepository:Create", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&department.ID)
	}
	return nil
}

func (r *DepartmentRepository) Update(ctx context.Context, department *entity.Department, id uuid.UUID) error {
	query := `
		UPDATE departments
		SET name = $1, slug = $2, description = $3, updated_at = now()
		WHERE id = $4
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query,
		department.Name,
		department.Slug,
		department.Description,
		id,
	)
	if err != nil {
		logger.Error("DepartmentRepository:Update", "error", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("DepartmentRepository:Update:RowsAffected", "error", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM departments
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("DepartmentRepository:Delete", "error", err)
		return err
	}
	return nil
}

func (r *DepartmentRepository) GetById(ctx context.Context, id uuid.UUID) (*entity.Department, error) {
	var department entity.Department
	query := `
		SELECT
			id,
			name,
			slug,
			description,
			created_at,
			updated_at
		FROM departments
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &department, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DepartmentRepository:GetById", "error", err)
		return nil, err
	}
	return &department, nil
}

func (r *DepartmentRepository) List(ctx context.Context, params params.QueryParams) (*entity.PaginatedDepartmentEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM departments`

	var whereClause string
	var args []any

	conditions := []string{}
	argIndex := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) " + baseQuery + whereClause

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, countQuery, args...)
	if err != nil {
		logger.Error("DepartmentRepository:List:Count", "error", err)
		return nil, err
	}

	dataQuery := `
		SELECT
			id,
			name,
			slug,
			description,
			created_at,
			updated_at
	` + baseQuery + whereClause + `
		ORDER BY name ASC
		LIMIT $` + fmt.Sprintf("%d", argIndex) + ` OFFSET $` + fmt.Sprintf("%d", argIndex+1)

	args = append(args, params.PageSize, offset)

	var departments []entity.Department
	err = r.DB.SelectContext(ctx, &departments, dataQuery, args...)
	if err != nil {
		logger.Error("DepartmentRepository:List:Select", "error", err)
		return nil, err
	}

	return &entity.PaginatedDepartmentEntity{
		Items:      departments,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}
