package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/ieltsprep/config"
	"github.com/lshigami/ieltsprep/database"
	_ "github.com/lshigami/ieltsprep/docs" // Swagger docs
	"github.com/lshigami/ieltsprep/internal/controller"
	adminctrl "github.com/lshigami/ieltsprep/internal/controller/admin"
	userctrl "github.com/lshigami/ieltsprep/internal/controller/user"
	"github.com/lshigami/ieltsprep/internal/logger"
	"github.com/lshigami/ieltsprep/internal/model"
	"github.com/lshigami/ieltsprep/internal/repository"
	"github.com/lshigami/ieltsprep/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title IELTS Practice API
// @version 1.0
// @description API for IELTS Reading and Listening practice tests with deterministic scoring and band conversion, plus AI feedback for Writing tasks.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewTestAttemptRepository,
			repository.NewWritingFeedbackRepository,
		),

		fx.Provide(
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewTestAttemptService,
			service.NewAdminAttemptService,
			service.NewGeminiTextGenerator,
			service.NewWritingFeedbackService,
		),

		fx.Provide(
			adminctrl.NewAdminTestController,
			adminctrl.NewAdminAttemptController,
			userctrl.NewUserTestController,
			userctrl.NewWritingController,
			controller.NewHealthController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(CloseTextGenerator),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

func NewGinEngine(cfg *config.Config) (*gin.Engine, error) {
	logger.Configure(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.GinMode)

	if err := controller.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminTestCtrl *adminctrl.AdminTestController,
	adminAttemptCtrl *adminctrl.AdminAttemptController,
	userTestCtrl *userctrl.UserTestController,
	writingCtrl *userctrl.WritingController,
	healthCtrl *controller.HealthController,
) {
	router.GET("/healthz", healthCtrl.Health)

	adminAPIGroup := router.Group("/api/v1/admin")
	{
		testsAdminGroup := adminAPIGroup.Group("/tests")
		testsAdminGroup.POST("", adminTestCtrl.CreateTest)
		testsAdminGroup.PUT("/:test_id", adminTestCtrl.UpdateTest)
		testsAdminGroup.POST("/:test_id/publish", adminTestCtrl.PublishTest)
		testsAdminGroup.DELETE("/:test_id", adminTestCtrl.DeleteTest)

		adminAPIGroup.POST("/test-attempts/:attempt_id/rescore", adminAttemptCtrl.RescoreAttempt)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/tests", userTestCtrl.GetAllTests)
		userAPIGroup.GET("/tests/:test_id", userTestCtrl.GetTestDetails)

		userAPIGroup.POST("/tests/:test_id/attempts", userTestCtrl.StartAttempt)
		userAPIGroup.GET("/tests/:test_id/my-attempts", userTestCtrl.GetUserTestAttempts) // User ID from query/auth
		userAPIGroup.GET("/test-attempts/:attempt_id", userTestCtrl.GetSpecificTestAttemptDetails)
		userAPIGroup.PUT("/test-attempts/:attempt_id/answers", userTestCtrl.SaveAnswers)
		userAPIGroup.POST("/test-attempts/:attempt_id/submit", userTestCtrl.SubmitAttempt)

		userAPIGroup.POST("/writing/feedback", writingCtrl.SubmitWriting)
		userAPIGroup.GET("/writing/feedback", writingCtrl.GetWritingHistory)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("IELTS Practice API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// CloseTextGenerator releases the AI client on shutdown.
func CloseTextGenerator(lc fx.Lifecycle, generator service.TextGenerator) {
	closer, ok := generator.(io.Closer)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closer.Close()
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Test{},
		&model.Question{},
		&model.TestAttempt{},
		&model.WritingFeedback{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
