package repository

import (
	"context"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"

	"github.com/jmoiron/sqlx"
)

const feedSelect = `
	SELECT
		p.post_id, p.content, p.post_type, p.department_id, p.course_code, p.category,
		p.priority, p.is_announcement, p.created_at,
		u.user_id AS author_id, u.username, u.role, u.student_id,
		d.name AS department_name, d.code AS department_code,
		(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.post_id) AS likes_count,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.post_id) AS comments_count,
		COALESCE(array_agg(pt.tag ORDER BY pt.tag) FILTER (WHERE pt.tag IS NOT NULL), '{}') AS tags
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
	LEFT JOIN departments d ON d.department_id = p.department_id
	LEFT JOIN post_tags pt ON pt.post_id = p.post_id`

const feedGroupOrder = `
	GROUP BY p.post_id, u.user_id, d.department_id
	ORDER BY p.created_at DESC, p.post_id DESC`

type FeedRepositoryImpl struct {
	db *sqlx.DB
}

func NewFeedRepository(db *sqlx.DB) *FeedRepositoryImpl {
	return &FeedRepositoryImpl{db: db}
}

// List returns posts newest first. Each non-nil filter field narrows the result.
func (r *FeedRepositoryImpl) List(ctx context.Context, filter models.FeedFilter) ([]models.FeedPost, error) {
	var c conditions
	if filter.DepartmentID != nil {
		c.add("p.department_id", *filter.DepartmentID)
	}
	if filter.PostType != nil {
		c.add("p.post_type", string(*filter.PostType))
	}
	if filter.CourseCode != nil {
		c.add("p.course_code", *filter.CourseCode)
	}

	return r.selectFeed(ctx, c)
}

func (r *FeedRepositoryImpl) ListForAuthor(ctx context.Context, authorID string) ([]models.FeedPost, error) {
	var c conditions
	c.add("p.author_id", authorID)

	return r.selectFeed(ctx, c)
}

func (r *FeedRepositoryImpl) selectFeed(ctx context.Context, c conditions) ([]models.FeedPost, error) {
	query := feedSelect + c.where() + feedGroupOrder

	posts := []models.FeedPost{}
	if err := r.db.SelectContext(ctx, &posts, query, c.args...); err != nil {
		if isMissingReference(err) {
			return []models.FeedPost{}, nil
		}
		return nil, apperrors.Storage("ошибка при получении ленты", err)
	}

	return posts, nil
}
