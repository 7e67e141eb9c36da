package repository

import (
	"context"
	"database/sql"
	"errors"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `
		SELECT user_id, username, email, role, department_id, student_id,
		       year_of_study, bio, profile_picture, created_at
		FROM users
		WHERE user_id = $1
	`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMissingReference(err) {
			return nil, apperrors.Validation("пользователь с ID %s не найден", userID)
		}
		return nil, apperrors.Storage("ошибка при получении пользователя", err)
	}

	return &user, nil
}
