// @title QuizHub API
// @version 1.0
// @description Quiz authoring and quiz-taking service.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizhub/internal/cache"
	"quizhub/internal/config"
	"quizhub/internal/database"
	"quizhub/internal/domain"
	"quizhub/internal/handler"
	"quizhub/internal/logger"
	"quizhub/internal/middleware"
	"quizhub/internal/repository"
	"quizhub/internal/service"

	_ "quizhub/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	appLogger.Info("Successfully connected to database")

	// Initialize repositories
	quizRepository := repository.NewSQLXQuizRepository(db)
	attemptRepository := repository.NewSQLXAttemptRepository(db)

	// Initialize the projection cache. Redis being down is not fatal; reads
	// fall through to the repository.
	var quizCache cache.Cache
	if redisClient, err := cache.NewRedisClient(cfg.Redis); err != nil {
		appLogger.Warn("Redis unavailable, serving quiz reads without cache", zap.Error(err))
	} else {
		quizCache = cache.NewRedisCache(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	// Initialize services
	quizService := service.NewQuizService(quizRepository, quizCache)
	attemptService := service.NewAttemptService(quizRepository, attemptRepository)

	authService, err := service.NewAuthService(cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)
	attemptHandler := handler.NewAttemptHandler(attemptService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	apiGroup := app.Group("/api")

	// Quiz routes: reads are public and always projected; authoring requires
	// the super_admin role.
	quizGroup := apiGroup.Group("/quizzes")
	quizGroup.Get("/", quizHandler.ListQuizzes)
	quizGroup.Get("/:id", quizHandler.GetQuiz)
	quizGroup.Post("/", middleware.Protected(authService), middleware.RequireRole(domain.RoleSuperAdmin), quizHandler.CreateQuiz)
	quizGroup.Put("/:id", middleware.Protected(authService), middleware.RequireRole(domain.RoleSuperAdmin), quizHandler.ReplaceQuiz)
	quizGroup.Delete("/:id", middleware.Protected(authService), middleware.RequireRole(domain.RoleSuperAdmin), quizHandler.DeleteQuiz)

	// Attempt routes
	attemptGroup := apiGroup.Group("/attempts", middleware.Protected(authService))
	attemptGroup.Post("/", attemptHandler.Submit)
	attemptGroup.Get("/me", attemptHandler.ListMyAttempts)
	attemptGroup.Get("/", middleware.RequireRole(domain.RoleSuperAdmin), attemptHandler.ListAllAttempts)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
