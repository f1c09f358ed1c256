package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"bloglist/internal/cache"
	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/handler"
	"bloglist/internal/queue"
	"bloglist/internal/redis"
	"bloglist/internal/repository"
	"bloglist/internal/service"
	"bloglist/internal/worker"
)

// Run wires the whole application together and serves until interrupted.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer redisClient.Close()
	if err := redisClient.Ping(ctx); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	statsCache := cache.NewStatsCache(redisClient.Client)
	publisher := queue.NewPublisher(redisClient.Client)
	consumer := queue.NewConsumer(redisClient.Client)

	tokenService := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLSeconds)*time.Second)
	userService := service.NewUserService(userRepo, cfg.BcryptCost)
	blogService := service.NewBlogService(blogRepo, userRepo, publisher)
	statsService := service.NewStatsService(blogRepo, statsCache)

	manager := worker.NewManager(consumer, worker.NewHandler(statsCache, blogRepo), worker.ManagerConfig{})
	if err := manager.Start(ctx); err != nil {
		return fmt.Errorf("failed to start workers: %w", err)
	}
	defer manager.Stop()

	router := NewRouter(RouterConfig{
		AuthHandler:  handler.NewAuthHandler(userService, tokenService),
		UserHandler:  handler.NewUserHandler(userService),
		BlogHandler:  handler.NewBlogHandler(blogService),
		StatsHandler: handler.NewStatsHandler(statsService),
		TokenService: tokenService,
		UserRepo:     userRepo,
	})

	server := &stdhttp.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
