package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusfeed/cmd/app"
	"campusfeed/internal/config"
	handlers "campusfeed/internal/handler"
	"campusfeed/internal/logger"
	"campusfeed/internal/middleware"

	"go.uber.org/zap"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	logg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Не удалось инициализировать логгер: %v", err)
	}
	defer logg.Sync()

	if cfg.JWTSecretKey == "" {
		logg.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, _, services, err := app.App(ctx, cfg, logg)
	if err != nil {
		logg.Fatal("не удалось инициализировать приложение", zap.Error(err))
	}
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, logg)
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)

	handlerChain := middleware.Chain(
		handler.Router(),
		limiter.Middleware,
		middleware.LoggingMiddleware(logg),
		middleware.IdentityMiddleware(services.Auth),
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handlerChain,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logg.Info("сервер запущен", zap.String("addr", addr), zap.String("db", cfg.DB.DbNAME))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error("ошибка запуска сервера", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("ошибка остановки сервера", zap.Error(err))
	}
	logg.Info("сервер остановлен")
}
