package service

import (
	"campusfeed/internal/config"
	"campusfeed/internal/repository"

	"go.uber.org/zap"
)

type Service struct {
	User        UserService
	Auth        AuthService
	Post        PostService
	Interaction InteractionService
	Feed        FeedService
	Campus      CampusService
	Tables      TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, log *zap.Logger) *Service {
	v := newValidator()

	return &Service{
		User:        NewUserService(rep.User),
		Auth:        NewAuthService(cfg.JWTSecretKey),
		Post:        NewPostService(rep.Post, v, log),
		Interaction: NewInteractionService(rep.Interaction, v),
		Feed:        NewFeedService(rep.Feed, rep.Department),
		Campus:      NewCampusService(rep.Event, rep.Resource, rep.Mentorship, rep.Calendar, v, log),
		Tables:      NewTablesService(rep.Tables),
	}
}
