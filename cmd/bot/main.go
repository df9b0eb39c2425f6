package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/mentor_booking_bot/internal/app"
	"github.com/Freeeeeet/mentor_booking_bot/internal/config"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller"
	"github.com/Freeeeeet/mentor_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/mentor_booking_bot/internal/repository"
	"github.com/Freeeeeet/mentor_booking_bot/internal/server"
	"github.com/Freeeeeet/mentor_booking_bot/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)

	defer logger.Sync()

	logger.Sugar().Infow("Starting mentor booking bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken),
		"http_addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
		return
	}

	logger.Info("👋 Shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// База данных
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("✅ Connected to database")

	// Миграции
	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		_ = migrator.Close()
		return err
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	// Репозитории
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool, logger)
	scheduleRepo := repository.NewScheduleRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	// Сервисы
	userService := service.NewUserService(userRepo, logger)
	courseService := service.NewCourseService(courseRepo, scheduleRepo, userRepo, logger)
	bookingService := service.NewBookingService(courseRepo, scheduleRepo, bookingRepo, logger)

	stateManager := state.NewManager()

	// Telegram
	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, userService, courseService, bookingService, stateManager, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		// Меню команд не критично для работы
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return botController.Start(gctx)
	})

	g.Go(func() error {
		return app.NewScheduler(stateManager, cfg.BookingDialogTTL, cfg.SweepInterval, logger).Run(gctx)
	})

	if cfg.HTTPAddr != "" {
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		srv := server.New(cfg.HTTPAddr, server.NewRouter(courseService, logger), logger)
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}

	return g.Wait()
}
