package service

import (
	"context"
	"testing"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedService_List(t *testing.T) {
	t.Run("Фильтры передаются в хранилище", func(t *testing.T) {
		feedRepo := new(MockFeedRepository)
		dept := int64(2)
		postType := models.PostTypeEvent
		filter := models.FeedFilter{DepartmentID: &dept, PostType: &postType}

		feedRepo.On("List", mock.Anything, filter).Return([]models.FeedPost{{PostID: postID}}, nil)

		svc := NewFeedService(feedRepo, new(MockDepartmentRepository))
		posts, err := svc.List(context.Background(), filter)

		require.NoError(t, err)
		assert.Len(t, posts, 1)
		feedRepo.AssertExpectations(t)
	})

	t.Run("Пустой код курса не фильтрует", func(t *testing.T) {
		feedRepo := new(MockFeedRepository)
		empty := ""

		feedRepo.On("List", mock.Anything, models.FeedFilter{}).Return([]models.FeedPost{}, nil)

		svc := NewFeedService(feedRepo, new(MockDepartmentRepository))
		_, err := svc.List(context.Background(), models.FeedFilter{CourseCode: &empty})

		require.NoError(t, err)
		feedRepo.AssertExpectations(t)
	})

	t.Run("Неизвестный тип поста", func(t *testing.T) {
		feedRepo := new(MockFeedRepository)
		bad := models.PostType("poll")

		svc := NewFeedService(feedRepo, new(MockDepartmentRepository))
		posts, err := svc.List(context.Background(), models.FeedFilter{PostType: &bad})

		assert.Nil(t, posts)
		assert.True(t, apperrors.IsValidation(err))
		feedRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestFeedService_ListForAuthor(t *testing.T) {
	feedRepo := new(MockFeedRepository)
	feedRepo.On("ListForAuthor", mock.Anything, studentID).Return([]models.FeedPost{{PostID: postID, AuthorID: studentID}}, nil)

	svc := NewFeedService(feedRepo, new(MockDepartmentRepository))

	posts, err := svc.ListForAuthor(context.Background(), studentID)
	require.NoError(t, err)
	assert.Equal(t, studentID, posts[0].AuthorID)

	_, err = svc.ListForAuthor(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestFeedService_Departments(t *testing.T) {
	deptRepo := new(MockDepartmentRepository)
	deptRepo.On("List", mock.Anything).Return([]models.Department{{DepartmentID: 1, Code: "CSE"}}, nil)

	svc := NewFeedService(new(MockFeedRepository), deptRepo)
	departments, err := svc.Departments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "CSE", departments[0].Code)
}
