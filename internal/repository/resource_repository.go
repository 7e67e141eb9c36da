package repository

import (
	"context"
	"time"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ResourceRepositoryImpl struct {
	db *sqlx.DB
}

func NewResourceRepository(db *sqlx.DB) *ResourceRepositoryImpl {
	return &ResourceRepositoryImpl{db: db}
}

// Create stores a resource awaiting approval.
func (r *ResourceRepositoryImpl) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources
		(resource_id, title, description, resource_type, file_url, course_code, department_id, uploader_id, is_approved, created_at)
		VALUES
		(:resource_id, :title, :description, :resource_type, :file_url, :course_code, :department_id, :uploader_id, FALSE, :created_at)
	`

	if resource.ResourceID == "" {
		resource.ResourceID = uuid.New().String()
	}
	resource.IsApproved = false
	resource.CreatedAt = time.Now().UTC()

	if _, err := r.db.NamedExecContext(ctx, query, resource); err != nil {
		if isMissingReference(err) {
			return apperrors.Validation("автор или кафедра ресурса не существует")
		}
		return apperrors.Storage("ошибка при добавлении ресурса", err)
	}

	return nil
}

func (r *ResourceRepositoryImpl) ListApproved(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	var c conditions
	c.raw("r.is_approved = TRUE")
	if filter.DepartmentID != nil {
		c.add("r.department_id", *filter.DepartmentID)
	}
	if filter.CourseCode != nil {
		c.add("r.course_code", *filter.CourseCode)
	}
	if filter.ResourceType != nil {
		c.add("r.resource_type", *filter.ResourceType)
	}

	query := `
		SELECT r.resource_id, r.title, r.description, r.resource_type, r.file_url, r.course_code,
		       r.department_id, r.uploader_id, r.is_approved, r.download_count, r.created_at,
		       u.username AS uploader_name, d.name AS department_name
		FROM resources r
		JOIN users u ON u.user_id = r.uploader_id
		LEFT JOIN departments d ON d.department_id = r.department_id` +
		c.where() + `
		ORDER BY r.created_at DESC, r.resource_id DESC`

	resources := []models.Resource{}
	if err := r.db.SelectContext(ctx, &resources, query, c.args...); err != nil {
		return nil, apperrors.Storage("ошибка при получении ресурсов", err)
	}

	return resources, nil
}

// Approve reports false when the resource does not exist.
func (r *ResourceRepositoryImpl) Approve(ctx context.Context, resourceID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE resources SET is_approved = TRUE WHERE resource_id = $1`, resourceID)
	if err != nil {
		if isMissingReference(err) {
			return false, nil
		}
		return false, apperrors.Storage("ошибка при одобрении ресурса", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Storage("ошибка при проверке обновленных строк", err)
	}

	return rowsAffected > 0, nil
}
