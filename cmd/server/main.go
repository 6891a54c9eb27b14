package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/okanoworks/orgtask-api/internal/config"
	"github.com/okanoworks/orgtask-api/internal/database"
	"github.com/okanoworks/orgtask-api/internal/handlers"
	"github.com/okanoworks/orgtask-api/internal/middleware"
	"github.com/okanoworks/orgtask-api/internal/repository"
	"github.com/okanoworks/orgtask-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Operational logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	db := database.GetDB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	logRepo := repository.NewActivityLogRepository(db)

	// Services
	audit := services.NewAuditLogger(logRepo, zapLogger)
	defer audit.Flush()

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	projectService := services.NewProjectService(projectRepo, audit)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo, audit)
	logService := services.NewActivityLogService(logRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	logHandler := handlers.NewActivityLogHandler(logService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "OrgTask API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register-org", authHandler.RegisterOrganization)
			auth.POST("/login", authHandler.Login)
		}

		// Project routes (protected; mutations are admin-only)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", middleware.RequireAdmin(), projectHandler.CreateProject)
			projects.PATCH("/:id", middleware.RequireAdmin(), projectHandler.UpdateProject)
			projects.DELETE("/:id", middleware.RequireAdmin(), projectHandler.DeleteProject)
		}

		// Task routes (protected, any org member)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
		}

		// Activity log routes (admin-only)
		logs := api.Group("/activity-logs")
		logs.Use(middleware.RequireAuth(cfg.JWTSecret), middleware.RequireAdmin())
		{
			logs.GET("", logHandler.ListLogs)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
