package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"enoki-admin/core/database"
	"enoki-admin/core/logger"
	"enoki-admin/core/params"
	"enoki-admin/modules/teacher/entity"

	"github.com/google/uuid"
)

type TeacherRepository struct {
	DB database.IDatabase
}

func NewTeacherRepository(db database.IDatabase) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

func (r *TeacherRepository) Create(ctx context.Context, teacher *entity.Teacher) error {
	query := `
		INSERT INTO teachers (name, email, department_id, rfid_hash, schedule)
		VALUES (:name, :email, :department_id, :rfid_hash, :schedule)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, teacher)
	if err != nil {
		logger.Error("TeacherRepository:Create", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&teacher.ID)
	}
	return nil
}

func (r *TeacherRepository) Update(ctx context.Context, teacher *entity.Teacher, id uuid.UUID) error {
	query := `
		UPDATE teachers
		SET name = $1, email = $2, department_id = $3, rfid_hash = $4, schedule = $5, updated_at = now()
		WHERE id = $6
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query,
		teacher.Name,
		teacher.Email,
		teacher.DepartmentID,
		teacher.RFIDHash,
		teacher.Schedule,
		id,
	)
	if err != nil {
		logger.Error("TeacherRepository:Update", "error", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("TeacherRepository:Update:RowsAffected", "error", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM teachers
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("TeacherRepository:Delete", "error", err)
		return err
	}
	return nil
}

func (r *TeacherRepository) GetById(ctx context.Context, id uuid.UUID) (*entity.Teacher, error) {
	var teacher entity.Teacher
	query := `
		SELECT
			id,
			name,
			email,
			department_id,
			rfid_hash,
			schedule,
			created_at,
			updated_at
		FROM teachers
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &teacher, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TeacherRepository:GetById", "error", err)
		return nil, err
	}
	return &teacher, nil
}

func (r *TeacherRepository) GetByRFIDHash(ctx context.Context, rfidHash string) (*entity.Teacher, error) {
	var teacher entity.Teacher
	query := `
		SELECT
			id,
			name,
			email,
			department_id,
			rfid_hash,
			schedule,
			created_at,
			updated_at
		FROM teachers
		WHERE rfid_hash = $1
	`
	err := r.DB.GetContext(ctx, &teacher, query, rfidHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TeacherRepository:GetByRFIDHash", "error", err)
		return nil, err
	}
	return &teacher, nil
}

func (r *TeacherRepository) List(ctx context.Context, params params.QueryParams) (*entity.PaginatedTeacherEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM teachers`

	var whereClause string
	var args []any

	conditions := []string{}
	argIndex := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", argIndex, argIndex))
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
		logger.Error("TeacherRepository:List:Count", "error", err)
		return nil, err
	}

	dataQuery := `
		SELECT
			id,
			name,
			email,
			department_id,
			rfid_hash,
			schedule,
			created_at,
			updated_at
	` + baseQuery + whereClause + `
		ORDER BY name ASC
		LIMIT $` + fmt.Sprintf("%d", argIndex) + ` OFFSET $` + fmt.Sprintf("%d", argIndex+1)

	args = append(args, params.PageSize, offset)

	var teachers []entity.Teacher
	err = r.DB.SelectContext(ctx, &teachers, dataQuery, args...)
	if err != nil {
		logger.Error("TeacherRepository:List:Select", "error", err)
		return nil, err
	}

	return &entity.PaginatedTeacherEntity{
		Items:      teachers,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

// ExistsByEmail reports whether another teacher already uses the email.
// excludeID skips the record currently being edited.
func (r *TeacherRepository) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM teachers WHERE lower(email) = lower($1) AND id != $2`
	err := r.DB.GetContext(ctx, &count, query, email, excludeID)
	if err != nil {
		logger.Error("TeacherRepository:ExistsByEmail", "error", err)
		return false, err
	}
	return count > 0, nil
}

func (r *TeacherRepository) ExistsByRFIDHash(ctx context.Context, rfidHash string, excludeID uuid.UUID) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM teachers WHERE rfid_hash = $1 AND id != $2`
	err := r.DB.GetContext(ctx, &count, query, rfidHash, excludeID)
	if err != nil {
		logger.Error("TeacherRepository:ExistsByRFIDHash", "error", err)
		return false, err
	}
	return count > 0, nil
}
