package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepositoryImpl(t *testing.T) {
	t.Run("Создание мероприятия", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewEventRepository(db)

		mock.ExpectExec(`INSERT INTO events`).
			WithArgs(sqlmock.AnyArg(), "Hackathon", nil, "competition", int64(1), "user-1",
				nil, "Hall A", true, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		event := &models.Event{
			Title:        "Hackathon",
			EventType:    stringPtr("competition"),
			DepartmentID: int64Ptr(1),
			OrganizerID:  "user-1",
			Location:     stringPtr("Hall A"),
			IsPublic:     true,
		}
		err := repo.Create(context.Background(), event)

		require.NoError(t, err)
		assert.NotEmpty(t, event.EventID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Список публичных мероприятий с фильтром", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewEventRepository(db)

		eventDate := time.Now().Add(24 * time.Hour)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE e.is_public = TRUE AND e.event_type = $1 ORDER BY e.event_date ASC")).
			WithArgs("workshop").
			WillReturnRows(sqlmock.NewRows([]string{
				"event_id", "title", "description", "event_type", "department_id", "organizer_id",
				"event_date", "location", "is_public", "created_at", "organizer_name", "department_name",
			}).AddRow("event-1", "Go workshop", nil, "workshop", nil, "user-1",
				eventDate, nil, true, time.Now(), "alice", nil))

		workshop := "workshop"
		events, err := repo.List(context.Background(), models.EventFilter{EventType: &workshop})

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "alice", events[0].OrganizerName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResourceRepositoryImpl(t *testing.T) {
	t.Run("Ресурс создаётся неодобренным", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectExec(`INSERT INTO resources .* FALSE`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		resource := &models.Resource{Title: "Lecture notes", UploaderID: "user-1", IsApproved: true}
		err := repo.Create(context.Background(), resource)

		require.NoError(t, err)
		assert.False(t, resource.IsApproved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Кафедра не существует", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectExec(`INSERT INTO resources`).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Create(context.Background(), &models.Resource{Title: "x", UploaderID: "user-1", DepartmentID: int64Ptr(99)})

		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("Только одобренные ресурсы", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE r.is_approved = TRUE AND r.department_id = $1 AND r.course_code = $2")).
			WithArgs(int64(1), "CSE101").
			WillReturnRows(sqlmock.NewRows([]string{
				"resource_id", "title", "description", "resource_type", "file_url", "course_code",
				"department_id", "uploader_id", "is_approved", "download_count", "created_at",
				"uploader_name", "department_name",
			}).AddRow("res-1", "Notes", nil, "notes", nil, "CSE101", int64(1), "user-1", true, int64(4),
				time.Now(), "alice", "Computer Science & Engineering"))

		course := "CSE101"
		resources, err := repo.ListApproved(context.Background(), models.ResourceFilter{
			DepartmentID: int64Ptr(1),
			CourseCode:   &course,
		})

		require.NoError(t, err)
		require.Len(t, resources, 1)
		assert.Equal(t, 4, resources[0].DownloadCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Одобрение ресурса", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectExec(`UPDATE resources SET is_approved = TRUE WHERE resource_id = \$1`).
			WithArgs("res-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE resources`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Approve(context.Background(), "res-1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Approve(context.Background(), "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMentorshipRepositoryImpl(t *testing.T) {
	t.Run("Запрос создаётся в статусе pending", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMentorshipRepository(db)

		mock.ExpectExec(`INSERT INTO mentorship`).
			WithArgs(sqlmock.AnyArg(), "mentor-1", "mentee-1", "Algorithms", "pending", nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		m := &models.Mentorship{MentorID: "mentor-1", MenteeID: "mentee-1", SubjectArea: stringPtr("Algorithms")}
		err := repo.Create(context.Background(), m)

		require.NoError(t, err)
		assert.Equal(t, models.MentorshipPending, m.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Список запросов пользователя", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMentorshipRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE m.mentor_id = $1 OR m.mentee_id = $1")).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{
				"mentorship_id", "mentor_id", "mentee_id", "subject_area", "status", "message", "created_at",
				"mentor_name", "mentor_role", "mentee_name", "mentee_role",
			}).AddRow("m-1", "user-2", "user-1", nil, "pending", nil, time.Now(),
				"prof", "faculty", "alice", "student"))

		requests, err := repo.ListForUser(context.Background(), "user-1")

		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, models.RoleFaculty, requests[0].MentorRole)
		assert.Equal(t, models.MentorshipPending, requests[0].Status)
	})

	t.Run("Ответ наставника", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMentorshipRepository(db)

		mock.ExpectExec(`UPDATE mentorship SET status = \$1`).
			WithArgs("accepted", "m-1", "user-2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.UpdateStatus(context.Background(), "m-1", "user-2", models.MentorshipAccepted)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCalendarRepositoryImpl(t *testing.T) {
	t.Run("Добавление записи", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCalendarRepository(db)

		start := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectExec(`INSERT INTO academic_calendar`).
			WithArgs(sqlmock.AnyArg(), "Finals", nil, "exam", start, nil, nil, true, "staff-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		entry := &models.CalendarEntry{
			Title:       "Finals",
			EventType:   stringPtr("exam"),
			StartDate:   start,
			IsImportant: true,
			CreatedBy:   "staff-1",
		}
		err := repo.Create(context.Background(), entry)

		require.NoError(t, err)
		assert.NotEmpty(t, entry.CalendarID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCalendarRepository(db)

		mock.ExpectQuery(`FROM academic_calendar ac`).
			WillReturnError(errors.New("timeout"))

		entries, err := repo.List(context.Background(), models.CalendarFilter{})

		assert.Nil(t, entries)
		assert.True(t, apperrors.IsStorage(err))
	})
}

func TestDepartmentRepositoryImpl_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDepartmentRepository(db)

	mock.ExpectQuery(`FROM departments ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"department_id", "name", "code", "description"}).
			AddRow(int64(2), "Business Administration", "BBA", nil).
			AddRow(int64(1), "Computer Science & Engineering", "CSE", "Department of Computer Science and Engineering"))

	departments, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "BBA", departments[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryImpl_GetUserByID(t *testing.T) {
	t.Run("Пользователь найден", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`FROM users\s+WHERE user_id = \$1`).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{
				"user_id", "username", "email", "role", "department_id", "student_id",
				"year_of_study", "bio", "profile_picture", "created_at",
			}).AddRow("user-1", "alice", "alice@uni.edu", "student", int64(1), "2021-1-60-001",
				int64(3), nil, nil, time.Now()))

		user, err := repo.GetUserByID(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, 3, *user.YearOfStudy)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`FROM users`).WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(context.Background(), "missing")

		assert.Nil(t, user)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestTablesRepositoryImpl_CountTables(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewTablesRepository(db)

	mock.ExpectQuery(`FROM information_schema.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(10)))

	count, err := repo.CountTables(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, count)
}
