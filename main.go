package main

import (
	"fmt"
	"log"
	"os"

	"studybuddy/config"
	"studybuddy/handler"
	"studybuddy/middleware"
	"studybuddy/repository"
	"studybuddy/services"
	"studybuddy/usecase"
	"studybuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"REDIS_URL",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
	utils.InitMinioClient()
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Repositories
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	versionsRepo := repository.GetVersionsRepo(utils.MongoClient)
	sharesRepo := repository.GetSharesRepo(utils.MongoClient)
	progressRepo := repository.GetProgressRepo(utils.MongoClient)
	filesRepo := repository.GetFilesRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	profilesRepo := repository.GetProfilesRepo(utils.MongoClient)
	plansRepo := repository.GetPlansRepo(utils.MongoClient)

	// Services
	notesService := &usecase.NotesService{
		NotesRepo:    notesRepo,
		VersionsRepo: versionsRepo,
		SharesRepo:   sharesRepo,
		ProgressRepo: progressRepo,
		Feed:         services.GlobalNoteFeed,
	}
	sharesService := &usecase.SharesService{
		SharesRepo: sharesRepo,
		NotesRepo:  notesRepo,
		UsersRepo:  usersRepo,
	}
	progressService := &usecase.ProgressService{ProgressRepo: progressRepo}
	plansService := &usecase.PlansService{PlansRepo: plansRepo}
	filesService := &usecase.FilesService{
		FilesRepo: filesRepo,
		Blobs:     services.NewMinioStore(utils.MinioClient, utils.GetEnvAsString("MINIO_BUCKET", "files")),
	}
	usersService := &usecase.UsersService{
		UsersRepo:    usersRepo,
		ProfilesRepo: profilesRepo,
	}
	aiService := usecase.NewAIService(config.LoadAIConfig())
	checkout := services.NewCheckout()

	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"cpu":    utils.GetCPUUsage(),
			"memory": utils.GetMemoryUsage(),
		})
	})

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, usersService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, usersService, sessionRepo)
			})
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetProfileHandler(c, usersService)
			})
			user.PUT("/profile", func(c *gin.Context) {
				handler.UpdateDisplayNameHandler(c, usersService)
			})
			user.POST("/intro-seen", func(c *gin.Context) {
				handler.MarkIntroSeenHandler(c, usersService)
			})
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, notesService)
			})
			notes.GET("/search", func(c *gin.Context) {
				handler.SearchNotesHandler(c, notesService)
			})
			notes.GET("/categories", func(c *gin.Context) {
				handler.ListCategoriesHandler(c, notesService)
			})
			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})

			// Version history
			notes.GET("/:id/versions", func(c *gin.Context) {
				handler.ListVersionsHandler(c, notesService)
			})
			notes.POST("/:id/versions/:versionId/restore", func(c *gin.Context) {
				handler.RestoreVersionHandler(c, notesService)
			})

			// Sharing
			notes.POST("/:id/share", func(c *gin.Context) {
				handler.ShareNoteHandler(c, sharesService)
			})
			notes.GET("/:id/shares", func(c *gin.Context) {
				handler.ListNoteSharesHandler(c, sharesService)
			})
		}

		shares := protected.Group("/shares")
		{
			shares.GET("/with-me", func(c *gin.Context) {
				handler.ListSharedWithMeHandler(c, sharesService)
			})
			shares.DELETE("/:shareId", func(c *gin.Context) {
				handler.RevokeShareHandler(c, sharesService)
			})
		}

		if services.GlobalNoteFeed != nil {
			protected.GET("/feed", func(c *gin.Context) {
				handler.FeedHandler(c, services.GlobalNoteFeed)
			})
		}

		progress := protected.Group("/progress")
		{
			progress.GET("/summary", func(c *gin.Context) {
				handler.ProgressSummaryHandler(c, progressService)
			})
			progress.POST("/minutes", func(c *gin.Context) {
				handler.AddMinutesHandler(c, progressService)
			})
			progress.POST("/quiz-done", func(c *gin.Context) {
				handler.RecordQuizDoneHandler(c, progressService)
			})
		}

		plans := protected.Group("/plans")
		{
			plans.GET("", func(c *gin.Context) {
				handler.ListPlansHandler(c, plansService)
			})
			plans.POST("", func(c *gin.Context) {
				handler.CreatePlanHandler(c, plansService)
			})
			plans.GET("/:id", func(c *gin.Context) {
				handler.GetPlanHandler(c, plansService)
			})
			plans.PUT("/:id", func(c *gin.Context) {
				handler.UpdatePlanHandler(c, plansService)
			})
			plans.DELETE("/:id", func(c *gin.Context) {
				handler.DeletePlanHandler(c, plansService)
			})
			plans.POST("/:id/tasks/:taskId/toggle", func(c *gin.Context) {
				handler.TogglePlanTaskHandler(c, plansService)
			})
		}

		files := protected.Group("/files")
		{
			files.POST("", func(c *gin.Context) {
				handler.UploadFilesHandler(c, filesService)
			})
			files.GET("", func(c *gin.Context) {
				handler.ListFilesHandler(c, filesService)
			})
			files.GET("/:id/url", func(c *gin.Context) {
				handler.FileURLHandler(c, filesService)
			})
			files.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteFileHandler(c, filesService)
			})
		}

		ai := protected.Group("/ai")
		{
			ai.POST("/chat", func(c *gin.Context) {
				handler.ChatHandler(c, aiService)
			})
			ai.POST("/improve-note", func(c *gin.Context) {
				handler.ImproveNoteHandler(c, aiService)
			})
			ai.POST("/generate-quiz", func(c *gin.Context) {
				handler.GenerateQuizHandler(c, aiService)
			})
			ai.POST("/generate-exam", func(c *gin.Context) {
				handler.GenerateExamHandler(c, aiService)
			})
			ai.POST("/generate-flashcards", func(c *gin.Context) {
				handler.GenerateFlashcardsHandler(c, aiService)
			})
		}

		protected.POST("/checkout", func(c *gin.Context) {
			handler.CheckoutHandler(c, checkout, usersService)
		})
	}

	return router
}

func main() {
	// Redis-backed session cache and change feed
	redisURL := os.Getenv("REDIS_URL")
	if cache, err := services.NewSessionCache(redisURL); err != nil {
		log.Printf("Session cache disabled: %v", err)
	} else {
		services.GlobalSessionCache = cache
	}
	if feed, err := services.NewNoteFeed(redisURL); err != nil {
		log.Printf("Change feed disabled: %v", err)
	} else {
		services.GlobalNoteFeed = feed
	}

	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
