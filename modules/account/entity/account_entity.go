package entity

import (
	"enoki-admin/core/entity"
)

type Account struct {
	Username string `db:"username"`

	// PasswordHash is a bcrypt hash, never exposed over the API
	PasswordHash string `db:"password_hash"`

	Role string `db:"role"`

	entity.BaseEntity
}

type PaginatedAccountEntity = entity.Pagination[Account]
