package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

type postTag struct {
	PostID string `db:"post_id"`
	Tag    string `db:"tag"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

// Create stores the post and its tags in one transaction.
func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts
		(post_id, author_id, content, post_type, department_id, course_code, category, priority, is_announcement, created_at)
		VALUES
		(:post_id, :author_id, :content, :post_type, :department_id, :course_code, :category, :priority, :is_announcement, :created_at)
	`

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	post.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Storage("ошибка при открытии транзакции", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, query, post); err != nil {
		if isMissingReference(err) {
			return apperrors.Validation("автор или кафедра поста не существует")
		}
		return apperrors.Storage("ошибка при создании поста", err)
	}

	if len(post.Tags) > 0 {
		tags := make([]postTag, 0, len(post.Tags))
		for _, tag := range post.Tags {
			tags = append(tags, postTag{PostID: post.PostID, Tag: tag})
		}

		tagQuery := `
			INSERT INTO post_tags (post_id, tag)
			VALUES (:post_id, :tag)
			ON CONFLICT DO NOTHING
		`
		if _, err := tx.NamedExecContext(ctx, tagQuery, tags); err != nil {
			return apperrors.Storage("ошибка при добавлении тегов", err)
		}
	}

	if err := tx.Commit(); err != nil {
		if isMissingReference(err) {
			return apperrors.Validation("автор или кафедра поста не существует")
		}
		return apperrors.Storage("ошибка при сохранении поста", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
		SELECT post_id, author_id, content, post_type, department_id, course_code,
		       category, priority, is_announcement, created_at
		FROM posts
		WHERE post_id = $1
	`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMissingReference(err) {
			return nil, apperrors.Validation("пост с ID %s не найден", postID)
		}
		return nil, apperrors.Storage("ошибка при получении поста", err)
	}

	post.Tags = []string{}
	if err := r.db.SelectContext(ctx, &post.Tags, `SELECT tag FROM post_tags WHERE post_id = $1 ORDER BY tag`, postID); err != nil {
		return nil, apperrors.Storage("ошибка при получении тегов поста", err)
	}

	return &post, nil
}

// Delete removes the post together with its likes, comments and tags.
// It reports false when no post with that id belongs to authorID.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID, authorID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, apperrors.Storage("ошибка при открытии транзакции", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1 AND author_id = $2`, postID, authorID)
	if err != nil {
		if isMissingReference(err) {
			return false, nil
		}
		return false, apperrors.Storage("ошибка при удалении поста", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Storage("ошибка при проверке удаленных строк", err)
	}

	if rowsAffected == 0 {
		return false, nil
	}

	// foreign keys are deferred, so order does not matter
	dependents := []string{
		`DELETE FROM likes WHERE post_id = $1`,
		`DELETE FROM comments WHERE post_id = $1`,
		`DELETE FROM post_tags WHERE post_id = $1`,
	}
	for _, query := range dependents {
		if _, err := tx.ExecContext(ctx, query, postID); err != nil {
			return false, apperrors.Storage("ошибка при удалении связанных данных поста", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, apperrors.Storage("ошибка при подтверждении удаления поста", err)
	}

	return true, nil
}
