package handlers

import (
	"context"

	"campusfeed/internal/identity"
	"campusfeed/internal/models"
	"campusfeed/internal/service"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type testHandlers struct {
	h           *Handlers
	user        *MockUserService
	post        *MockPostService
	interaction *MockInteractionService
	feed        *MockFeedService
	campus      *MockCampusService
	tables      *MockTablesService
}

func newTestHandlers() testHandlers {
	th := testHandlers{
		user:        new(MockUserService),
		post:        new(MockPostService),
		interaction: new(MockInteractionService),
		feed:        new(MockFeedService),
		campus:      new(MockCampusService),
		tables:      new(MockTablesService),
	}
	th.h = &Handlers{
		UserService:        th.user,
		PostService:        th.post,
		InteractionService: th.interaction,
		FeedService:        th.feed,
		CampusService:      th.campus,
		TablesService:      th.tables,
		Log:                zap.NewNop(),
	}
	return th
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, caller identity.Identity, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, caller identity.Identity, postID string) (bool, error) {
	args := m.Called(ctx, caller, postID)
	return args.Bool(0), args.Error(1)
}

type MockInteractionService struct {
	mock.Mock
}

func (m *MockInteractionService) Like(ctx context.Context, caller identity.Identity, postID string) ([]models.Liker, error) {
	args := m.Called(ctx, caller, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Liker), args.Error(1)
}

func (m *MockInteractionService) Unlike(ctx context.Context, caller identity.Identity, postID string) ([]models.Liker, error) {
	args := m.Called(ctx, caller, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Liker), args.Error(1)
}

func (m *MockInteractionService) Comment(ctx context.Context, caller identity.Identity, postID, content string) (*models.Comment, error) {
	args := m.Called(ctx, caller, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockInteractionService) ListLikes(ctx context.Context, postID string) ([]models.Liker, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Liker), args.Error(1)
}

func (m *MockInteractionService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) List(ctx context.Context, filter models.FeedFilter) ([]models.FeedPost, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedPost), args.Error(1)
}

func (m *MockFeedService) ListForAuthor(ctx context.Context, authorID string) ([]models.FeedPost, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedPost), args.Error(1)
}

func (m *MockFeedService) Departments(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Department), args.Error(1)
}

type MockCampusService struct {
	mock.Mock
}

func (m *MockCampusService) CreateEvent(ctx context.Context, caller identity.Identity, req service.CreateEventRequest) (*models.Event, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockCampusService) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockCampusService) ShareResource(ctx context.Context, caller identity.Identity, req service.ShareResourceRequest) (*models.Resource, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockCampusService) ListResources(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resource), args.Error(1)
}

func (m *MockCampusService) ApproveResource(ctx context.Context, caller identity.Identity, resourceID string) (bool, error) {
	args := m.Called(ctx, caller, resourceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCampusService) RequestMentorship(ctx context.Context, caller identity.Identity, req service.MentorshipRequest) (*models.Mentorship, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentorship), args.Error(1)
}

func (m *MockCampusService) ListMentorships(ctx context.Context, caller identity.Identity) ([]models.Mentorship, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Mentorship), args.Error(1)
}

func (m *MockCampusService) RespondMentorship(ctx context.Context, caller identity.Identity, mentorshipID string, status models.MentorshipStatus) (bool, error) {
	args := m.Called(ctx, caller, mentorshipID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockCampusService) AddCalendarEntry(ctx context.Context, caller identity.Identity, req service.CalendarEntryRequest) (*models.CalendarEntry, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CalendarEntry), args.Error(1)
}

func (m *MockCampusService) ListCalendar(ctx context.Context, filter models.CalendarFilter) ([]models.CalendarEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CalendarEntry), args.Error(1)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) CountTables(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
