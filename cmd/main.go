package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tdhoang/auditflow/config"
	"github.com/tdhoang/auditflow/database"
	_ "github.com/tdhoang/auditflow/docs" // Swagger docs - auto-generated
	"github.com/tdhoang/auditflow/internal/controller"
	"github.com/tdhoang/auditflow/internal/logger"
	"github.com/tdhoang/auditflow/internal/middleware"
	"github.com/tdhoang/auditflow/internal/model"
	"github.com/tdhoang/auditflow/internal/repository"
	"github.com/tdhoang/auditflow/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Audit Workflow API
// @version 1.0
// @description Backend for the audit workflow: admins create and assign questions, auditors answer, reviewers accept or reject.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewAssignmentRepository,
			repository.NewAnswerRepository,
			repository.NewReviewRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			service.NewWorkflowService,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewUserController,
			controller.NewQuestionController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the route table (with its per-route role
// gates) and manages the HTTP server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	userCtrl *controller.UserController,
	questionCtrl *controller.QuestionController,
) {
	secret := cfg.JWT.Secret
	adminOnly := middleware.Authorize(secret, model.RoleAdmin)
	auditorOnly := middleware.Authorize(secret, model.RoleAuditor)
	anyRole := middleware.Authorize(secret, model.RoleAdmin, model.RoleAuditor)
	authenticated := middleware.Authorize(secret)

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/user", userCtrl.CreateUser)
		authGroup.GET("/user/byRole", authenticated, userCtrl.GetUsersByRole)
		authGroup.GET("/user/:id", authenticated, userCtrl.GetUser)
	}

	questionGroup := router.Group("/api/questions")
	{
		questionGroup.POST("", adminOnly, questionCtrl.CreateQuestion)
		questionGroup.GET("", anyRole, questionCtrl.GetQuestions)
		questionGroup.POST("/assign-question/:userId/:questionId", adminOnly, questionCtrl.AssignQuestion)
		questionGroup.GET("/assigned-questions/:userId", anyRole, questionCtrl.GetAssignedQuestions)
		questionGroup.POST("/submit-answers/:userId", auditorOnly, questionCtrl.SubmitAnswers)
		questionGroup.POST("/submit-answers/single/:userId", auditorOnly, questionCtrl.SubmitSingleAnswer)
		questionGroup.GET("/review-answers/:userId", anyRole, questionCtrl.ReviewAnswers)
		questionGroup.PUT("/answer/:answerId", anyRole, questionCtrl.UpdateAnswer)
		questionGroup.PUT("/answer/status/:answerId", anyRole, questionCtrl.UpdateAnswerStatus)
		questionGroup.GET("/answer/reviews/:answerId", anyRole, questionCtrl.GetAnswerReviews)
		questionGroup.GET("/assignments", adminOnly, questionCtrl.GetAllAssignments)
		questionGroup.DELETE("/:id", adminOnly, questionCtrl.DeleteQuestion)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Audit Workflow API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.QuestionAssignment{},
		&model.Answer{},
		&model.AnswerReview{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
