package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"enoki-admin/core/database"
	"enoki-admin/core/logger"
	"enoki-admin/core/params"
	"enoki-admin/modules/student/entity"

	"github.com/google/uuid"
)

type StudentRepository struct {
	DB database.IDatabase
}

func NewStudentRepository(db database.IDatabase) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(ctx context.Context, student *entity.Student) error {
	query := `
		INSERT INTO students (student_id, name, email, class_name, rfid_hash)
		VALUES (:student_id, :name, :email, :class_name, :rfid_hash)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, student)
	if err != nil {
		logger.Error("StudentRepository:Create", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&student.ID)
	}
	return nil
}

func (r *StudentRepository) Update(ctx context.Context, student *entity.Student, id uuid.UUID) error {
	query := `
		UPDATE students
		SET student_id = $1, name = $2, email = $3, class_name = $4, rfid_hash = $5, updated_at = now()
		WHERE id = $6
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query,
		student.StudentID,
		student.Name,
		student.Email,
		student.ClassName,
		student.RFIDHash,
		id,
	)
	if err != nil {
		logger.Error("StudentRepository:Update", "error", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("StudentRepository:Update:RowsAffected", "error", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM students
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("StudentRepository:Delete", "error", err)
		return err
	}
	return nil
}

func (r *StudentRepository) GetById(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var student entity.Student
	query := `
		SELECT
			id,
			student_id,
			name,
			email,
			class_name,
			rfid_hash,
			created_at,
			updated_at
		FROM students
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &student, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("StudentRepository:GetById", "error", err)
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) List(ctx context.Context, params params.QueryParams) (*entity.PaginatedStudentEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM students`

	var whereClause string
	var args []any

	conditions := []string{}
	argIndex := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR student_id ILIKE $%d)", argIndex, argIndex))
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
		logger.Error("StudentRepository:List:Count", "error", err)
		return nil, err
	}

	dataQuery := `
		SELECT
			id,
			student_id,
			name,
			email,
			class_name,
			rfid_hash,
			created_at,
			updated_at
	` + baseQuery + whereClause + `
		ORDER BY name ASC
		LIMIT $` + fmt.Sprintf("%d", argIndex) + ` OFFSET $` + fmt.Sprintf("%d", argIndex+1)

	args = append(args, params.PageSize, offset)

	var students []entity.Student
	err = r.DB.SelectContext(ctx, &students, dataQuery, args...)
	if err != nil {
		logger.Error("StudentRepository:List:Select", "error", err)
		return nil, err
	}

	return &entity.PaginatedStudentEntity{
		Items:      students,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *StudentRepository) ExistsByStudentID(ctx context.Context, studentID string, excludeID uuid.UUID) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM students WHERE student_id = $1 AND id != $2`
	err := r.DB.GetContext(ctx, &count, query, studentID, excludeID)
	if err != nil {
		logger.Error("StudentRepository:ExistsByStudentID", "error", err)
		return false, err
	}
	return count > 0, nil
}

func (r *StudentRepository) ExistsByRFIDHash(ctx context.Context, rfidHash string, excludeID uuid.UUID) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM students WHERE rfid_hash = $1 AND id != $2`
	err := r.DB.GetContext(ctx, &count, query, rfidHash, excludeID)
	if err != nil {
		logger.Error("StudentRepository:ExistsByRFIDHash", "error", err)
		return false, err
	}
	return count > 0, nil
}
