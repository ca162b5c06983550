package main

import (
	"log"
	"time"

	"folio-be/internal/config"
	"folio-be/internal/controllers"
	"folio-be/internal/database"
	"folio-be/internal/metrics"
	"folio-be/internal/middleware"
	"folio-be/internal/repository"
	"folio-be/internal/service"
	"folio-be/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Session store: Redis when configured, in-memory otherwise
	var sessionStore session.Store
	if cfg.RedisURL != "" {
		sessionStore, err = session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Falling back to in-memory sessions.", err)
			sessionStore = session.NewMemoryStore()
		} else {
			log.Println("Connected to Redis session store")
		}
	} else {
		sessionStore = session.NewMemoryStore()
	}

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionStore, sessionTTL)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo)
	skillService := service.NewSkillService(skillRepo)
	achievementService := service.NewAchievementService(achievementRepo)
	dashboardService := service.NewDashboardService(projectRepo, skillRepo, achievementRepo, metrics.NewStaticProvider())

	// Initialize controllers
	authController := controllers.NewAuthController(authService, userService, int(sessionTTL.Seconds()), cfg.IsProduction())
	userController := controllers.NewUserController(userService)
	projectController := controllers.NewProjectController(projectService)
	skillController := controllers.NewSkillController(skillService)
	achievementController := controllers.NewAchievementController(achievementService)
	dashboardController := controllers.NewDashboardController(dashboardService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create a Gin router
	router := gin.Default()

	// CORS with credentials so the browser client can send the session cookie
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (no auth)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)
		}

		// Protected routes - require a live session
		protected := api.Group("")
		protected.Use(middleware.SessionAuth(sessionStore))
		{
			protected.GET("/auth/me", authController.Me)

			protected.PUT("/users/profile", userController.UpdateProfile)

			protected.GET("/projects", projectController.List)
			protected.POST("/projects", projectController.Create)
			protected.PUT("/projects/:id", projectController.Update)
			protected.DELETE("/projects/:id", projectController.Delete)

			protected.GET("/skills", skillController.List)
			protected.POST("/skills", skillController.Create)
			protected.PUT("/skills/:id", skillController.Update)
			protected.DELETE("/skills/:id", skillController.Delete)

			protected.GET("/achievements", achievementController.List)
			protected.POST("/achievements", achievementController.Create)
			protected.PUT("/achievements/:id", achievementController.Update)
			protected.DELETE("/achievements/:id", achievementController.Delete)

			protected.GET("/dashboard/stats", dashboardController.Stats)
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
