package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"enoki-admin/core/database"
	"enoki-admin/core/logger"
	"enoki-admin/core/params"
	"enoki-admin/modules/course/entity"

	"github.com/google/uuid"
)

type CourseRepository struct {
	DB database.IDatabase
}

func NewCourseRepository(db database.IDatabase) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *entity.Course) error {
	query := `
		INSERT INTO courses (code, title, department_id, units)
		VALUES (:code, :title, :department_id, :units)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, course)
	if err != nil {
		logger.Error("CourseRepository:Create", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&course.ID)
	}
	return nil
}

func (r *CourseRepository) Update(ctx context.Context, course *entity.Course, id uuid.UUID) error {
	query := `
		UPDATE courses
		SET code = $1, title = $2, department_id = $3, units = $4, updated_at = now()
		WHERE id = $5
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query,
		course.Code,
		course.Title,
		course.DepartmentID,
		course.Units,
		id,
	)
	if err != nil {
		logger.Error("CourseRepository:Update", "error", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("CourseRepository:Update:RowsAffected", "error", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM courses
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("CourseRepository:Delete", "error", err)
		return err
	}
	return nil
}

func (r *CourseRepository) GetById(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var course entity.Course
	query := `
		SELECT
			id,
			code,
			title,
			department_id,
			units,
			created_at,
			updated_at
		FROM courses
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &course, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CourseRepository:GetById", "error", err)
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) List(ctx context.Context, params params.QueryParams) (*entity.PaginatedCourseEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM courses`

	var whereClause string
	var args []any

	conditions := []string{}
	argIndex := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(code ILIKE $%d OR title ILIKE $%d)", argIndex, argIndex))
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
		logger.Error("CourseRepository:List:Count", "error", err)
		return nil, err
	}

	dataQuery := `
		SELECT
			id,
			code,
			title,
			department_id,
			units,
			created_at,
			updated_at
	` + baseQuery + whereClause + `
		ORDER BY code ASC
		LIMIT $` + fmt.Sprintf("%d", argIndex) + ` OFFSET $` + fmt.Sprintf("%d", argIndex+1)

	args = append(args, params.PageSize, offset)

	var courses []entity.Course
	err = r.DB.SelectContext(ctx, &courses, dataQuery, args...)
	if err != nil {
		logger.Error("CourseRepository:List:Select", "error", err)
		return nil, err
	}

	return &entity.PaginatedCourseEntity{
		Items:      courses,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}
