package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/GanderM1/testforgenew/config"
	_ "github.com/GanderM1/testforgenew/docs" // Swagger docs - generated by swag init
	"github.com/GanderM1/testforgenew/internal/auth"
	adminctrl "github.com/GanderM1/testforgenew/internal/controller/admin"
	userctrl "github.com/GanderM1/testforgenew/internal/controller/user"
	"github.com/GanderM1/testforgenew/internal/database"
	"github.com/GanderM1/testforgenew/internal/grading"
	"github.com/GanderM1/testforgenew/internal/logger"
	"github.com/GanderM1/testforgenew/internal/repository"
	"github.com/GanderM1/testforgenew/internal/seed"
	"github.com/GanderM1/testforgenew/internal/server"
	"github.com/GanderM1/testforgenew/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// @title TestForge API
// @version 1.0
// @description Classroom quiz platform: test authoring, grading of submissions and result statistics.
// @host localhost:3000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app := fx.New(appOptions()...)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func appOptions() []fx.Option {
	return []fx.Option{
		fx.NopLogger,

		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			server.NewGinEngine,
			auth.NewTokenManager,
		),

		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewTestResultRepository,
			repository.NewUserRepository,
			repository.NewGroupRepository,
		),

		fx.Provide(
			grading.NewGrader,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewTestSubmissionService,
			service.NewStatisticsService,
			service.NewAuthService,
			service.NewGroupService,
			seed.NewSeeder,
		),

		fx.Provide(
			adminctrl.NewAdminTestController,
			adminctrl.NewGroupController,
			userctrl.NewUserTestController,
			userctrl.NewAuthController,
			userctrl.NewGroupController,
			userctrl.NewHealthController,
		),

		fx.Invoke(InitLogger),
		fx.Invoke(database.Migrate),
		fx.Invoke(SeedDatabase),
		fx.Invoke(server.RegisterRoutes),
		fx.Invoke(StartServer),
	}
}

func InitLogger(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
}

func SeedDatabase(cfg *config.Config, seeder *seed.Seeder) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := seeder.LoadFile(ctx, cfg.SeedFile); err != nil {
		log.Error().Err(err).Str("file", cfg.SeedFile).Msg("Seeding failed")
		return err
	}
	return nil
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, router *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("TestForge API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return srv.Shutdown(ctx)
		},
	})
}
