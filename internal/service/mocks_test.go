package service

import (
	"context"

	"campusfeed/internal/models"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestValidation() *validation {
	return newValidator()
}

var nopLogger = zap.NewNop()

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID, authorID string) (bool, error) {
	args := m.Called(ctx, postID, authorID)
	return args.Bool(0), args.Error(1)
}

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Like(ctx context.Context, userID, postID string) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockInteractionRepository) Unlike(ctx context.Context, userID, postID string) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockInteractionRepository) ListLikes(ctx context.Context, postID string) ([]models.Liker, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Liker), args.Error(1)
}

func (m *MockInteractionRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockInteractionRepository) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) List(ctx context.Context, filter models.FeedFilter) ([]models.FeedPost, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedPost), args.Error(1)
}

func (m *MockFeedRepository) ListForAuthor(ctx context.Context, authorID string) ([]models.FeedPost, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedPost), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Department), args.Error(1)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) ListApproved(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resource), args.Error(1)
}

func (m *MockResourceRepository) Approve(ctx context.Context, resourceID string) (bool, error) {
	args := m.Called(ctx, resourceID)
	return args.Bool(0), args.Error(1)
}

type MockMentorshipRepository struct {
	mock.Mock
}

func (m *MockMentorshipRepository) Create(ctx context.Context, ms *models.Mentorship) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockMentorshipRepository) ListForUser(ctx context.Context, userID string) ([]models.Mentorship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Mentorship), args.Error(1)
}

func (m *MockMentorshipRepository) UpdateStatus(ctx context.Context, mentorshipID, mentorID string, status models.MentorshipStatus) (bool, error) {
	args := m.Called(ctx, mentorshipID, mentorID, status)
	return args.Bool(0), args.Error(1)
}

type MockCalendarRepository struct {
	mock.Mock
}

func (m *MockCalendarRepository) Create(ctx context.Context, entry *models.CalendarEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockCalendarRepository) List(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CalendarEntry), args.Error(1)
}
