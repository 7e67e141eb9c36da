package app

import (
	"context"

	"campusfeed/internal/config"
	"campusfeed/internal/database"
	"campusfeed/internal/repository"
	"campusfeed/internal/service"

	"go.uber.org/zap"
)

func App(ctx context.Context, cfg *config.Config, log *zap.Logger) (*database.DB, *repository.Repository, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, log)

	return db, repo, services, nil
}
