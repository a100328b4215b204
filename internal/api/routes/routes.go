package routes

import (
	"time"

	"project-tracker-backend/internal/api/handlers"
	"project-tracker-backend/internal/api/middleware"
	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/config"
	"project-tracker-backend/internal/repository"
	"project-tracker-backend/internal/service"
	"project-tracker-backend/internal/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validation.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	featureRepo := repository.NewFeatureRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	typeRepo := repository.NewTypeRepository(db)
	statisticsRepo := repository.NewStatisticsRepository(db)

	// Initialize auth
	hasher := auth.NewBcryptHasher()
	sessionStore := auth.NewSessionStore(cfg.SessionSecret, cfg.TokenTTLMinutes*60, cfg.IsProduction())
	tokenIssuer := auth.NewTokenIssuer(&auth.Config{
		SessionSecret: cfg.SessionSecret,
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      time.Duration(cfg.TokenTTLMinutes) * time.Minute,
		SecureCookies: cfg.IsProduction(),
	})
	authMiddleware := auth.NewMiddleware(sessionStore, tokenIssuer)

	// Initialize services
	userService := service.NewUserService(userRepo, roleRepo, teamRepo, hasher, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, validator)
	projectService := service.NewProjectService(projectRepo, userRepo, validator)
	featureService := service.NewFeatureService(featureRepo, projectRepo, userRepo, statusRepo, typeRepo, validator)
	taskService := service.NewTaskService(taskRepo, featureRepo, userRepo, statusRepo, typeRepo, validator)
	commentService := service.NewCommentService(commentRepo, userRepo, featureRepo, taskRepo, validator)
	roleService := service.NewRoleService(roleRepo, validator)
	statusService := service.NewStatusService(statusRepo, validator)
	typeService := service.NewTypeService(typeRepo, validator)
	statisticsService := service.NewStatisticsService(statisticsRepo, taskRepo, featureRepo, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(statisticsService)
	authHandler := handlers.NewAuthHandler(userService, sessionStore, tokenIssuer)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService)
	featureHandler := handlers.NewFeatureHandler(featureService)
	taskHandler := handlers.NewTaskHandler(taskService)
	commentHandler := handlers.NewCommentHandler(commentService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Public auth routes
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.POST("/register", authHandler.Register)
		}

		// Everything below needs a session
		protected := v1.Group("", authMiddleware.RequireSession())

		users := protected.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/me", userHandler.GetCurrentUser)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/name", userHandler.GetUserName)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/image", userHandler.GetProfileImage)
			users.PUT("/:id/image", userHandler.UploadProfileImage)
		}

		teams := protected.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.GET("/:id/name", teamHandler.GetTeamName)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/members", teamHandler.GetTeamMembers)
			teams.POST("/:id/members/:userId", teamHandler.AddTeamMember)
			teams.DELETE("/:id/members/:userId", teamHandler.RemoveTeamMember)
		}

		projects := protected.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		features := protected.Group("/features")
		{
			features.POST("", featureHandler.CreateFeature)
			features.GET("", featureHandler.ListFeatures)
			features.GET("/:id", featureHandler.GetFeature)
			features.GET("/:id/name", featureHandler.GetFeatureName)
			features.PUT("/:id", featureHandler.UpdateFeature)
			features.DELETE("/:id", featureHandler.DeleteFeature)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		comments := protected.Group("/comments")
		{
			comments.POST("", commentHandler.CreateComment)
			comments.GET("", commentHandler.ListComments)
			comments.GET("/:id", commentHandler.GetComment)
			comments.PUT("/:id", commentHandler.UpdateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		registerLookupRoutes(protected.Group("/roles"), handlers.NewLookupHandler(roleService))
		registerLookupRoutes(protected.Group("/statuses"), handlers.NewLookupHandler(statusService))
		registerLookupRoutes(protected.Group("/types"), handlers.NewLookupHandler(typeService))

		statistics := protected.Group("/statistics")
		{
			statistics.GET("/tasks/:id", statisticsHandler.TaskTimeSpent)
			statistics.GET("/features/:id", statisticsHandler.FeatureTimeSpent)
			statistics.GET("/users/:id", statisticsHandler.UserTimeSpent)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

func registerLookupRoutes(group *gin.RouterGroup, handler *handlers.LookupHandler) {
	group.POST("", handler.Create)
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}
