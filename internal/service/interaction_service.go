package service

import (
	"context"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/identity"
	"campusfeed/internal/models"
	"campusfeed/internal/repository"
)

type InteractionService interface {
	Like(ctx context.Context, caller identity.Identity, postID string) ([]models.Liker, error)
	Unlike(ctx context.Context, caller identity.Identity, postID string) ([]models.Liker, error)
	Comment(ctx context.Context, caller identity.Identity, postID, content string) (*models.Comment, error)
	ListLikes(ctx context.Context, postID string) ([]models.Liker, error)
	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
}

type interactionService struct {
	repo repository.InteractionRepository
	v    *validation
}

func NewInteractionService(repo repository.InteractionRepository, v *validation) InteractionService {
	return &interactionService{repo: repo, v: v}
}

// Like returns the likers after the change so the client can redraw the counter.
func (s *interactionService) Like(ctx context.Context, caller identity.Identity, postID string) ([]models.Liker, error) {
	if err := s.v.Var("postId", postID, "required,uuid"); err != nil {
		return nil, err
	}

	if err := s.repo.Like(ctx, caller.UserID, postID); err != nil {
		return nil, err
	}

	return s.repo.ListLikes(ctx, postID)
}

func (s *interactionService) Unlike(ctx context.Context, caller identity.Identity, postID string) ([]models.Liker, error) {
	if err := s.v.Var("postId", postID, "required,uuid"); err != nil {
		return nil, err
	}

	if err := s.repo.Unlike(ctx, caller.UserID, postID); err != nil {
		return nil, err
	}

	return s.repo.ListLikes(ctx, postID)
}

func (s *interactionService) Comment(ctx context.Context, caller identity.Identity, postID, content string) (*models.Comment, error) {
	if err := s.v.Var("postId", postID, "required,uuid"); err != nil {
		return nil, err
	}
	if err := s.v.Var("content", content, "max=2000"); err != nil {
		return nil, err
	}

	clean := s.v.Text(content)
	if clean == "" {
		return nil, apperrors.Validation("комментарий не может быть пустым")
	}

	comment := &models.Comment{
		UserID:  caller.UserID,
		PostID:  postID,
		Content: clean,
	}

	if err := s.repo.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *interactionService) ListLikes(ctx context.Context, postID string) ([]models.Liker, error) {
	if err := s.v.Var("postId", postID, "required,uuid"); err != nil {
		return nil, err
	}

	return s.repo.ListLikes(ctx, postID)
}

func (s *interactionService) ListComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if err := s.v.Var("postId", postID, "required,uuid"); err != nil {
		return nil, err
	}

	return s.repo.ListComments(ctx, postID)
}
