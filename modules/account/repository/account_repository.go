package repository

import (
	"context"
	"database/sql"

	"enoki-admin/core/database"
	"enoki-admin/core/logger"
	"enoki-admin/core/params"
	"enoki-admin/modules/account/entity"

	"github.com/google/uuid"
)

type AccountRepository struct {
	DB database.IDatabase
}

func NewAccountRepository(db database.IDatabase) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (username, password_hash, role)
		VALUES (:username, :password_hash, :role)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, account)
	if err != nil {
		logger.Error("AccountRepository:Create", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&account.ID)
	}
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, account *entity.Account, id uuid.UUID) error {
	query := `
		UPDATE accounts
		SET username = $1, password_hash = $2, role = $3, updated_at = now()
		WHERE id = $4
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query,
		account.Username,
		account.PasswordHash,
		account.Role,
		id,
	)
	if err != nil {
		logger.Error("AccountRepository:Update", "error", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("AccountRepository:Update:RowsAffected", "error", err)
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM accounts
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("AccountRepository:Delete", "error", err)
		return err
	}
	return nil
}

func (r *AccountRepository) GetById(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var account entity.Account
	query := `
		SELECT id, username, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &account, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AccountRepository:GetById", "error", err)
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var account entity.Account
	query := `
		SELECT id, username, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE username = $1
	`
	err := r.DB.GetContext(ctx, &account, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("AccountRepository:GetByUsername", "error", err)
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) List(ctx context.Context, params params.QueryParams) (*entity.PaginatedAccountEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, `SELECT COUNT(*) FROM accounts`)
	if err != nil {
		logger.Error("AccountRepository:List:Count", "error", err)
		return nil, err
	}

	query := `
		SELECT id, username, password_hash, role, created_at, updated_at
		FROM accounts
		ORDER BY username ASC
		LIMIT $1 OFFSET $2
	`

	var accounts []entity.Account
	err = r.DB.SelectContext(ctx, &accounts, query, params.PageSize, offset)
	if err != nil {
		logger.Error("AccountRepository:List:Select", "error", err)
		return nil, err
	}

	return &entity.PaginatedAccountEntity{
		Items:      accounts,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}
