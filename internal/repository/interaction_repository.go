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

type InteractionRepositoryImpl struct {
	db *sqlx.DB
}

func NewInteractionRepository(db *sqlx.DB) *InteractionRepositoryImpl {
	return &InteractionRepositoryImpl{db: db}
}

// Like is idempotent: a repeated like leaves a single row.
func (r *InteractionRepositoryImpl) Like(ctx context.Context, userID, postID string) error {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, userID, postID); err != nil {
		if isMissingReference(err) {
			return apperrors.Validation("пост %s не существует", postID)
		}
		return apperrors.Storage("ошибка при добавлении лайка", err)
	}

	return nil
}

// Unlike of a like that does not exist is a no-op.
func (r *InteractionRepositoryImpl) Unlike(ctx context.Context, userID, postID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID); err != nil {
		if isMissingReference(err) {
			return apperrors.Validation("пост %s не существует", postID)
		}
		return apperrors.Storage("ошибка при удалении лайка", err)
	}

	return nil
}

func (r *InteractionRepositoryImpl) ListLikes(ctx context.Context, postID string) ([]models.Liker, error) {
	query := `
		SELECT u.username
		FROM likes l
		JOIN users u ON u.user_id = l.user_id
		WHERE l.post_id = $1
		ORDER BY l.created_at, u.username
	`

	likers := []models.Liker{}
	if err := r.db.SelectContext(ctx, &likers, query, postID); err != nil {
		if isMissingReference(err) {
			return []models.Liker{}, nil
		}
		return nil, apperrors.Storage("ошибка при получении лайков", err)
	}

	return likers, nil
}

// AddComment inserts the comment and fills in its id, timestamp and author username.
func (r *InteractionRepositoryImpl) AddComment(ctx context.Context, comment *models.Comment) error {
	query := `
		WITH inserted AS (
			INSERT INTO comments (comment_id, user_id, post_id, content, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING comment_id, user_id, post_id, content, created_at
		)
		SELECT i.comment_id, i.user_id, i.post_id, i.content, i.created_at, u.username
		FROM inserted i
		JOIN users u ON u.user_id = i.user_id
	`

	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	createdAt := time.Now().UTC()

	err := r.db.GetContext(ctx, comment, query,
		comment.CommentID, comment.UserID, comment.PostID, comment.Content, createdAt)
	if err != nil {
		if isMissingReference(err) || errors.Is(err, sql.ErrNoRows) {
			return apperrors.Validation("пост %s не существует", comment.PostID)
		}
		return apperrors.Storage("ошибка при добавлении комментария", err)
	}

	return nil
}

// ListComments returns the newest comment first.
func (r *InteractionRepositoryImpl) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
		SELECT c.comment_id, c.user_id, c.post_id, c.content, c.created_at, u.username
		FROM comments c
		JOIN users u ON u.user_id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC, c.comment_id DESC
	`

	comments := []models.Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		if isMissingReference(err) {
			return []models.Comment{}, nil
		}
		return nil, apperrors.Storage("ошибка при получении комментариев", err)
	}

	return comments, nil
}
