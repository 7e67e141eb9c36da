package repository

import (
	"context"
	"time"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type MentorshipRepositoryImpl struct {
	db *sqlx.DB
}

func NewMentorshipRepository(db *sqlx.DB) *MentorshipRepositoryImpl {
	return &MentorshipRepositoryImpl{db: db}
}

func (r *MentorshipRepositoryImpl) Create(ctx context.Context, m *models.Mentorship) error {
	query := `
		INSERT INTO mentorship (mentorship_id, mentor_id, mentee_id, subject_area, status, message, created_at)
		VALUES (:mentorship_id, :mentor_id, :mentee_id, :subject_area, :status, :message, :created_at)
	`

	if m.MentorshipID == "" {
		m.MentorshipID = uuid.New().String()
	}
	m.Status = models.MentorshipPending
	m.CreatedAt = time.Now().UTC()

	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		if isMissingReference(err) {
			return apperrors.Validation("наставник с ID %s не существует", m.MentorID)
		}
		return apperrors.Storage("ошибка при создании запроса наставничества", err)
	}

	return nil
}

// ListForUser returns requests where the user is either side, newest first.
func (r *MentorshipRepositoryImpl) ListForUser(ctx context.Context, userID string) ([]models.Mentorship, error) {
	query := `
		SELECT m.mentorship_id, m.mentor_id, m.mentee_id, m.subject_area, m.status, m.message, m.created_at,
		       mentor.username AS mentor_name, mentor.role AS mentor_role,
		       mentee.username AS mentee_name, mentee.role AS mentee_role
		FROM mentorship m
		JOIN users mentor ON mentor.user_id = m.mentor_id
		JOIN users mentee ON mentee.user_id = m.mentee_id
		WHERE m.mentor_id = $1 OR m.mentee_id = $1
		ORDER BY m.created_at DESC, m.mentorship_id DESC
	`

	requests := []models.Mentorship{}
	if err := r.db.SelectContext(ctx, &requests, query, userID); err != nil {
		return nil, apperrors.Storage("ошибка при получении запросов наставничества", err)
	}

	return requests, nil
}

// UpdateStatus answers a pending request addressed to mentorID.
func (r *MentorshipRepositoryImpl) UpdateStatus(ctx context.Context, mentorshipID, mentorID string, status models.MentorshipStatus) (bool, error) {
	query := `
		UPDATE mentorship SET status = $1
		WHERE mentorship_id = $2 AND mentor_id = $3 AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, string(status), mentorshipID, mentorID)
	if err != nil {
		if isMissingReference(err) {
			return false, nil
		}
		return false, apperrors.Storage("ошибка при обновлении запроса наставничества", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Storage("ошибка при проверке обновленных строк", err)
	}

	return rowsAffected > 0, nil
}
