package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/naijacomply/backend/api/handler"
	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/internal/config"
	"github.com/naijacomply/backend/internal/infrastructure/blob"
	"github.com/naijacomply/backend/internal/infrastructure/monitor"
	pgInfra "github.com/naijacomply/backend/internal/infrastructure/postgres"
	redisInfra "github.com/naijacomply/backend/internal/infrastructure/redis"
	"github.com/naijacomply/backend/internal/middleware"
	"github.com/naijacomply/backend/internal/router"
	"github.com/naijacomply/backend/internal/services"
	"github.com/naijacomply/backend/internal/services/lifecycle"
	"github.com/naijacomply/backend/pkg/httpcontext"
	"github.com/naijacomply/backend/pkg/logger"
	"github.com/naijacomply/backend/repository/postgres"
	redisRepo "github.com/naijacomply/backend/repository/redis"
	authUC "github.com/naijacomply/backend/usecase/auth"
	complianceUC "github.com/naijacomply/backend/usecase/compliance"
	documentUC "github.com/naijacomply/backend/usecase/document"
	notificationUC "github.com/naijacomply/backend/usecase/notification"
	profileUC "github.com/naijacomply/backend/usecase/profile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if cfg.Migrations.Enabled {
		if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
			zapLogger.Fatal("migrations failed", zap.Error(err))
		}
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	blobStore, err := blob.Open(cfg.Blob.Path, cfg.Blob.Bucket)
	if err != nil {
		zapLogger.Fatal("failed to open blob store", zap.Error(err))
	}
	manager.Register("blob", func(ctx context.Context) error {
		return blobStore.Close()
	})

	mon := monitor.New(pool, redisClient, blobStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Session.TTL)

	authUseCase := authUC.New(userRepo, sessionRepo, zapLogger)
	profileUseCase := profileUC.New(userRepo, profileRepo, zapLogger)
	complianceUseCase := complianceUC.New(taskRepo, zapLogger)
	documentUseCase := documentUC.New(documentRepo, blobStore, cfg.Blob.MaxFileSize, zapLogger)
	notificationUseCase := notificationUC.New(notificationRepo, zapLogger)

	if cfg.Reminder.Enabled {
		reminder := services.NewReminder(taskRepo, documentRepo, notificationUseCase, zapLogger, services.ReminderConfig{
			Interval:       cfg.Reminder.Interval,
			DeadlineWindow: cfg.Reminder.DeadlineWindow,
		})
		reminder.Start()
		manager.Register("reminder", func(ctx context.Context) error {
			reminder.Stop(ctx)
			return nil
		})
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:         apiHandler.NewAuthHandler(authUseCase, cfg, ctxAdapter, zapLogger),
		Profile:      apiHandler.NewProfileHandler(profileUseCase, ctxAdapter, zapLogger),
		Task:         apiHandler.NewTaskHandler(complianceUseCase, ctxAdapter, zapLogger),
		Document:     apiHandler.NewDocumentHandler(documentUseCase, ctxAdapter, zapLogger),
		Notification: apiHandler.NewNotificationHandler(notificationUseCase, ctxAdapter, zapLogger),
		Admin:        apiHandler.NewAdminHandler(complianceUseCase, documentUseCase, notificationUseCase, ctxAdapter, zapLogger),
		Health:       apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	adminGate := middleware.RequireRole(domain.RoleSuperAdmin, zapLogger)
	r := router.New(handlers, authMiddleware, adminGate)

	server := &fasthttp.Server{
		Handler:            r.Handler,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		MaxRequestBodySize: cfg.HTTP.MaxBodySize,
		Name:               cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
