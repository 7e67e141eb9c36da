package repository

import (
	"context"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"

	"github.com/jmoiron/sqlx"
)

type DepartmentRepositoryImpl struct {
	db *sqlx.DB
}

func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepositoryImpl {
	return &DepartmentRepositoryImpl{db: db}
}

func (r *DepartmentRepositoryImpl) List(ctx context.Context) ([]models.Department, error) {
	departments := []models.Department{}

	err := r.db.SelectContext(ctx, &departments, `SELECT department_id, name, code, description FROM departments ORDER BY name`)
	if err != nil {
		return nil, apperrors.Storage("ошибка при получении кафедр", err)
	}

	return departments, nil
}
