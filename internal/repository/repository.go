package repository

import (
	"context"

	"campusfeed/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Delete(ctx context.Context, postID, authorID string) (bool, error)
}

type InteractionRepository interface {
	Like(ctx context.Context, userID, postID string) error
	Unlike(ctx context.Context, userID, postID string) error
	ListLikes(ctx context.Context, postID string) ([]models.Liker, error)
	AddComment(ctx context.Context, comment *models.Comment) error
	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
}

type FeedRepository interface {
	List(ctx context.Context, filter models.FeedFilter) ([]models.FeedPost, error)
	ListForAuthor(ctx context.Context, authorID string) ([]models.FeedPost, error)
}

type DepartmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	ListApproved(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	Approve(ctx context.Context, resourceID string) (bool, error)
}

type MentorshipRepository interface {
	Create(ctx context.Context, m *models.Mentorship) error
	ListForUser(ctx context.Context, userID string) ([]models.Mentorship, error)
	UpdateStatus(ctx context.Context, mentorshipID, mentorID string, status models.MentorshipStatus) (bool, error)
}

type CalendarRepository interface {
	Create(ctx context.Context, entry *models.CalendarEntry) error
	List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEntry, error)
}

type TablesRepository interface {
	CountTables(ctx context.Context) (int, error)
}

type Repository struct {
	Tables      TablesRepository
	User        UserRepository
	Post        PostRepository
	Interaction InteractionRepository
	Feed        FeedRepository
	Department  DepartmentRepository
	Event       EventRepository
	Resource    ResourceRepository
	Mentorship  MentorshipRepository
	Calendar    CalendarRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Tables:      NewTablesRepository(db),
		User:        NewUserRepository(db),
		Post:        NewPostRepository(db),
		Interaction: NewInteractionRepository(db),
		Feed:        NewFeedRepository(db),
		Department:  NewDepartmentRepository(db),
		Event:       NewEventRepository(db),
		Resource:    NewResourceRepository(db),
		Mentorship:  NewMentorshipRepository(db),
		Calendar:    NewCalendarRepository(db),
	}
}
