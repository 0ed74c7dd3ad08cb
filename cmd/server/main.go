package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/probuild/bidding-api/internal/config"
	"github.com/probuild/bidding-api/internal/constants"
	"github.com/probuild/bidding-api/internal/database"
	apierrors "github.com/probuild/bidding-api/internal/errors"
	"github.com/probuild/bidding-api/internal/handlers"
	"github.com/probuild/bidding-api/internal/middleware"
	"github.com/probuild/bidding-api/internal/models"
	"github.com/probuild/bidding-api/internal/repository"
	"github.com/probuild/bidding-api/internal/services"
	"github.com/sirupsen/logrus"
)

func main() {
	// Structured JSON logs with ISO 8601 timestamps
	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logrus.WithError(err).Fatal("failed to create indexes")
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create redis session store")
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	bidRepo := repository.NewBidRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	supplyRepo := repository.NewSupplyRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	accountService := services.NewAccountService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	bidService := services.NewBidService(bidRepo, projectRepo)
	skillService := services.NewSkillService(skillRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	accountHandler := handlers.NewAccountHandler(authService, accountService, cfg.UploadDir)
	projectHandler := handlers.NewProjectHandler(projectService)
	bidHandler := handlers.NewBidHandler(bidService)
	skillHandler := handlers.NewSkillHandler(skillService)
	reportHandler := handlers.NewReportHandler(projectRepo, skillRepo, supplyRepo)

	// Health check / public landing endpoint
	home := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Bidding API is running",
		})
	}
	r.GET("/", home)
	r.GET("/health", home)

	// Uploaded profile images
	r.Static("/uploads", cfg.UploadDir)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Account routes (any authenticated role)
		account := api.Group("/account")
		account.Use(middleware.RequireAuth())
		{
			account.GET("", accountHandler.GetAccount)
			account.PUT("", accountHandler.UpdateAccount)
		}

		// Project routes (customer only)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleCustomer))
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/bids", projectHandler.ListCustomerBids)
		}

		// Contractor routes
		contractor := api.Group("/contractor")
		contractor.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleContractor))
		{
			contractor.GET("/projects", projectHandler.ListAssignedProjects)
			contractor.POST("/bids", bidHandler.PlaceBid)
			contractor.GET("/skills", skillHandler.ListSkills)
			contractor.POST("/skills", skillHandler.AttachSkill)
			contractor.PUT("/skills/:skill_id", skillHandler.UpdateSkill)
			contractor.DELETE("/skills/:skill_id", skillHandler.DeleteSkill)
		}

		// Reporting routes (any authenticated role)
		reports := api.Group("/reports")
		reports.Use(middleware.RequireAuth())
		{
			reports.GET("/bids", reportHandler.ListAllBids)
			reports.GET("/skills", reportHandler.ListSkillsOffered)
			reports.GET("/supplies", reportHandler.ListSupplies)
			reports.GET("/supplies/stats", reportHandler.SupplyStats)
		}
	}

	// 404 for unmatched routes
	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "Route not found")
	})

	// Start server
	logrus.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
