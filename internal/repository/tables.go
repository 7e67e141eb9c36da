package repository

import (
	"context"

	"campusfeed/internal/apperrors"

	"github.com/jmoiron/sqlx"
)

type TablesRepositoryImpl struct {
	db *sqlx.DB
}

func NewTablesRepository(db *sqlx.DB) *TablesRepositoryImpl {
	return &TablesRepositoryImpl{db: db}
}

// CountTables reports how many tables of the public schema exist; used by the health check.
func (r *TablesRepositoryImpl) CountTables(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
	`)
	if err != nil {
		return 0, apperrors.Storage("ошибка при подсчёте таблиц базы данных", err)
	}

	return count, nil
}
