package handlers

import (
	"campusfeed/internal/service"

	"go.uber.org/zap"
)

type Handlers struct {
	UserService        service.UserService
	PostService        service.PostService
	InteractionService service.InteractionService
	FeedService        service.FeedService
	CampusService      service.CampusService
	TablesService      service.TablesService
	Log                *zap.Logger
}

func NewHandlers(services *service.Service, log *zap.Logger) *Handlers {
	return &Handlers{
		UserService:        services.User,
		PostService:        services.Post,
		InteractionService: services.Interaction,
		FeedService:        services.Feed,
		CampusService:      services.Campus,
		TablesService:      services.Tables,
		Log:                log,
	}
}
