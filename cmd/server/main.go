package main

import (
	"log"
	"strings"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/bootstrap"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/config"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/handler"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/middleware"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/repository"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/service"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/database"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/mailer"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/otp"
	"github.com/TanujDonkal/RavidassiaAbroad-sub000/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
	}

	// OTP codes live in Redis when available so resets survive restarts
	var otpStore otp.Store
	if rdb != nil {
		otpStore = otp.NewRedisStore(rdb)
	} else {
		otpStore = otp.NewMemoryStore()
	}

	var searchService service.SearchService
	if cfg.MeiliSearchHost != "" {
		meiliClient := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		searchService = service.NewMeiliSearchService(meiliClient)
	}

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	smtpMailer := mailer.NewSMTPMailer()

	userRepo := repository.NewUserRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	matrimonialRepo := repository.NewMatrimonialRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	recipientRepo := repository.NewRecipientRepository(db)

	notifier := service.NewNotificationService(recipientRepo, smtpMailer, cfg.NotifyFallbackEmail)

	authService := service.NewAuthService(userRepo, otpStore, smtpMailer, rdb, cfg.JWTSecret, cfg.GoogleClientID, cfg.OTPRequestCooldown)
	authHandler := handler.NewAuthHandler(authService)

	submissionService := service.NewSubmissionService(submissionRepo, notifier)
	submissionHandler := handler.NewSubmissionHandler(submissionService)

	matrimonialService := service.NewMatrimonialService(matrimonialRepo, imageStorage, notifier)
	matrimonialHandler := handler.NewMatrimonialHandler(matrimonialService)

	blogService := service.NewBlogService(blogRepo, categoryRepo, commentRepo, searchService)
	blogHandler := handler.NewBlogHandler(blogService, imageStorage)

	categoryService := service.NewCategoryService(categoryRepo)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	adminService := service.NewAdminService(userRepo, recipientRepo)
	adminHandler := handler.NewAdminHandler(adminService)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	router := gin.Default()
	router.Use(setupCORS(cfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/google", authHandler.GoogleSignIn)
			auth.POST("/request-reset", authHandler.RequestReset)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}

		submissions := api.Group("/scst-submissions")
		{
			submissions.POST("", authMiddleware.OptionalAuth(), submissionHandler.Create)
			submissions.GET("/mine", authMiddleware.RequireAuth(), submissionHandler.Mine)
		}

		matrimonial := api.Group("/matrimonial-submissions")
		matrimonial.Use(authMiddleware.RequireAuth())
		{
			matrimonial.POST("", matrimonialHandler.Submit)
			matrimonial.GET("/mine", matrimonialHandler.Mine)
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", blogHandler.List)
			blogs.GET("/search", blogHandler.Search)
			blogs.GET("/:slug", blogHandler.GetBySlug)
			blogs.GET("/:slug/comments", blogHandler.GetComments)
			blogs.POST("/:slug/comments", authMiddleware.OptionalAuth(), blogHandler.AddComment)
		}

		api.GET("/categories", categoryHandler.List)

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), middleware.RequireRoles(model.AdminRoles...))
		{
			admin.GET("/scst-submissions", submissionHandler.AdminList)
			admin.DELETE("/scst-submissions/:id", submissionHandler.AdminDelete)

			admin.GET("/matrimonial", matrimonialHandler.AdminList)
			admin.DELETE("/matrimonial/:id", matrimonialHandler.AdminDelete)

			admin.GET("/blogs", blogHandler.AdminList)
			admin.POST("/blogs", blogHandler.Create)
			admin.PUT("/blogs/:id", blogHandler.Update)
			admin.DELETE("/blogs/:id", blogHandler.Delete)
			admin.POST("/blogs/upload", blogHandler.UploadImage)

			admin.POST("/categories", categoryHandler.Create)
			admin.PUT("/categories/:id", categoryHandler.Update)
			admin.DELETE("/categories/:id", categoryHandler.Delete)

			admin.GET("/recipients", adminHandler.ListRecipients)
			admin.POST("/recipients", adminHandler.AddRecipient)
			admin.DELETE("/recipients/:id", adminHandler.DeleteRecipient)

			// User management is restricted to the main admin
			users := admin.Group("/users")
			users.Use(middleware.RequireRoles(model.RoleMainAdmin))
			{
				users.GET("", adminHandler.ListUsers)
				users.PUT("/:id/role", adminHandler.UpdateUserRole)
				users.DELETE("/:id", adminHandler.DeleteUser)
				users.POST("/bulk-delete", adminHandler.BulkDeleteUsers)
			}
		}
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func setupCORS(allowedOrigins string) gin.HandlerFunc {
	origins := []string{}
	for _, o := range strings.Split(allowedOrigins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	})
}
