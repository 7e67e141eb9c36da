package service

import (
	"context"

	"campusfeed/internal/apperrors"
	"campusfeed/internal/identity"
	"campusfeed/internal/models"
	"campusfeed/internal/repository"

	"go.uber.org/zap"
)

type CreatePostRequest struct {
	Content        string          `json:"content" validate:"max=5000"`
	PostType       models.PostType `json:"postType"`
	DepartmentID   *int64          `json:"departmentId" validate:"omitempty,gt=0"`
	CourseCode     *string         `json:"courseCode" validate:"omitempty,max=20"`
	Category       *string         `json:"category" validate:"omitempty,max=50"`
	Priority       models.Priority `json:"priority"`
	Tags           string          `json:"tags" validate:"max=500"`
	IsAnnouncement bool            `json:"isAnnouncement"`
}

type PostService interface {
	CreatePost(ctx context.Context, caller identity.Identity, req CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	DeletePost(ctx context.Context, caller identity.Identity, postID string) (bool, error)
}

type postService struct {
	postRepo repository.PostRepository
	v        *validation
	log      *zap.Logger
}

func NewPostService(postRepo repository.PostRepository, v *validation, log *zap.Logger) PostService {
	return &postService{
		postRepo: postRepo,
		v:        v,
		log:      log,
	}
}

func (p *postService) CreatePost(ctx context.Context, caller identity.Identity, req CreatePostRequest) (*models.Post, error) {
	if err := p.v.Struct(req); err != nil {
		return nil, err
	}

	content := p.v.Text(req.Content)
	if content == "" {
		return nil, apperrors.Validation("текст поста не может быть пустым")
	}

	postType := req.PostType
	if postType == "" {
		postType = models.PostTypeGeneral
	}
	if !postType.Valid() {
		return nil, apperrors.Validation("неизвестный тип поста: %s", postType)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !priority.Valid() {
		return nil, apperrors.Validation("неизвестный приоритет: %s", priority)
	}

	isAnnouncement := req.IsAnnouncement || postType == models.PostTypeAnnouncement
	if isAnnouncement && !caller.Role.Can(models.CapPublishAnnouncement) {
		return nil, apperrors.NotAuthorized("объявления могут публиковать только преподаватели и сотрудники")
	}

	post := &models.Post{
		AuthorID:       caller.UserID,
		Content:        content,
		PostType:       postType,
		DepartmentID:   req.DepartmentID,
		CourseCode:     p.v.OptionalText(req.CourseCode),
		Category:       p.v.OptionalText(req.Category),
		Priority:       priority,
		IsAnnouncement: isAnnouncement,
		Tags:           repository.ParseTags(p.v.Text(req.Tags)),
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	p.log.Info("пост создан",
		zap.String("post_id", post.PostID),
		zap.String("author_id", post.AuthorID),
		zap.String("post_type", string(post.PostType)),
		zap.Int("tags", len(post.Tags)),
	)

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	if err := p.v.Var("postId", postID, "required,uuid"); err != nil {
		return nil, err
	}

	return p.postRepo.GetByID(ctx, postID)
}

// DeletePost reports false when the post is missing or belongs to someone else.
func (p *postService) DeletePost(ctx context.Context, caller identity.Identity, postID string) (bool, error) {
	if err := p.v.Var("postId", postID, "required,uuid"); err != nil {
		return false, err
	}

	deleted, err := p.postRepo.Delete(ctx, postID, caller.UserID)
	if err != nil {
		return false, err
	}

	if deleted {
		p.log.Info("пост удалён", zap.String("post_id", postID), zap.String("author_id", caller.UserID))
	}

	return deleted, nil
}
