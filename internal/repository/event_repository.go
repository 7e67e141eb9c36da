package repository

import (
	"context"
	"time"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type EventRepositoryImpl struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepositoryImpl {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events
		(event_id, title, description, event_type, department_id, organizer_id, event_date, location, is_public, created_at)
		VALUES
		(:event_id, :title, :description, :event_type, :department_id, :organizer_id, :event_date, :location, :is_public, :created_at)
	`

	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.CreatedAt = time.Now().UTC()

	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		if isMissingReference(err) {
			return apperrors.Validation("организатор или кафедра мероприятия не существует")
		}
		return apperrors.Storage("ошибка при создании мероприятия", err)
	}

	return nil
}

// List returns public events, soonest first.
func (r *EventRepositoryImpl) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	var c conditions
	c.raw("e.is_public = TRUE")
	if filter.DepartmentID != nil {
		c.add("e.department_id", *filter.DepartmentID)
	}
	if filter.EventType != nil {
		c.add("e.event_type", *filter.EventType)
	}

	query := `
		SELECT e.event_id, e.title, e.description, e.event_type, e.department_id, e.organizer_id,
		       e.event_date, e.location, e.is_public, e.created_at,
		       u.username AS organizer_name, d.name AS department_name
		FROM events e
		JOIN users u ON u.user_id = e.organizer_id
		LEFT JOIN departments d ON d.department_id = e.department_id` +
		c.where() + `
		ORDER BY e.event_date ASC NULLS LAST, e.created_at DESC`

	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query, c.args...); err != nil {
		return nil, apperrors.Storage("ошибка при получении мероприятий", err)
	}

	return events, nil
}
