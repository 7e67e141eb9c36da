package service

import (
	"context"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/models"
	"campusfeed/internal/repository"
)

type FeedService interface {
	List(ctx context.Context, filter models.FeedFilter) ([]models.FeedPost, error)
	ListForAuthor(ctx context.Context, authorID string) ([]models.FeedPost, error)
	Departments(ctx context.Context) ([]models.Department, error)
}

type feedService struct {
	feedRepo       repository.FeedRepository
	departmentRepo repository.DepartmentRepository
}

func NewFeedService(feedRepo repository.FeedRepository, departmentRepo repository.DepartmentRepository) FeedService {
	return &feedService{
		feedRepo:       feedRepo,
		departmentRepo: departmentRepo,
	}
}

// List places no visibility rules of its own; only the given filters apply.
func (s *feedService) List(ctx context.Context, filter models.FeedFilter) ([]models.FeedPost, error) {
	if filter.PostType != nil && !filter.PostType.Valid() {
		return nil, apperrors.Validation("неизвестный тип поста: %s", *filter.PostType)
	}
	if filter.CourseCode != nil && *filter.CourseCode == "" {
		filter.CourseCode = nil
	}

	return s.feedRepo.List(ctx, filter)
}

func (s *feedService) ListForAuthor(ctx context.Context, authorID string) ([]models.FeedPost, error) {
	if authorID == "" {
		return nil, apperrors.Validation("не указан автор")
	}

	return s.feedRepo.ListForAuthor(ctx, authorID)
}

func (s *feedService) Departments(ctx context.Context) ([]models.Department, error) {
	return s.departmentRepo.List(ctx)
}
