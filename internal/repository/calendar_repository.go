package repository

import (
	"context"
	"time"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CalendarRepositoryImpl struct {
	db *sqlx.DB
}

func NewCalendarRepository(db *sqlx.DB) *CalendarRepositoryImpl {
	return &CalendarRepositoryImpl{db: db}
}

func (r *CalendarRepositoryImpl) Create(ctx context.Context, entry *models.CalendarEntry) error {
	query := `
		INSERT INTO academic_calendar
		(calendar_id, title, description, event_type, start_date, end_date, department_id, is_important, created_by, created_at)
		VALUES
		(:calendar_id, :title, :description, :event_type, :start_date, :end_date, :department_id, :is_important, :created_by, :created_at)
	`

	if entry.CalendarID == "" {
		entry.CalendarID = uuid.New().String()
	}
	entry.CreatedAt = time.Now().UTC()

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		if isMissingReference(err) {
			return apperrors.Validation("автор или кафедра записи календаря не существует")
		}
		return apperrors.Storage("ошибка при добавлении записи в календарь", err)
	}

	return nil
}

func (r *CalendarRepositoryImpl) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEntry, error) {
	var c conditions
	if filter.DepartmentID != nil {
		c.add("ac.department_id", *filter.DepartmentID)
	}
	if filter.EventType != nil {
		c.add("ac.event_type", *filter.EventType)
	}

	query := `
		SELECT ac.calendar_id, ac.title, ac.description, ac.event_type, ac.start_date, ac.end_date,
		       ac.department_id, ac.is_important, ac.created_by, ac.created_at,
		       u.username AS created_by_name, d.name AS department_name
		FROM academic_calendar ac
		JOIN users u ON u.user_id = ac.created_by
		LEFT JOIN departments d ON d.department_id = ac.department_id` +
		c.where() + `
		ORDER BY ac.start_date ASC, ac.calendar_id`

	entries := []models.CalendarEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, c.args...); err != nil {
		return nil, apperrors.Storage("ошибка при получении академического календаря", err)
	}

	return entries, nil
}
