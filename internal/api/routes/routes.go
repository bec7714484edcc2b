package routes

import (
	"roster-portal-backend/internal/api/handlers"
	"roster-portal-backend/internal/api/middleware"
	"roster-portal-backend/internal/auth"
	"roster-portal-backend/internal/config"
	"roster-portal-backend/internal/logger"
	"roster-portal-backend/internal/mailer"
	"roster-portal-backend/internal/repository"
	"roster-portal-backend/internal/service"
	"roster-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	log := logger.New()
	files := storage.NewDiskStore(cfg.UploadDir)
	mail := mailer.New(cfg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	gestorRepo := repository.NewGestorRepository(db)
	assistantRepo := repository.NewAssistantRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo, organizationRepo, files, mail, cfg, log, validate)
	userService := service.NewUserService(userRepo, organizationRepo, files, mail, cfg, log)
	organizationService := service.NewOrganizationService(organizationRepo, files, log, validate)
	memberService := service.NewMemberService(memberRepo, organizationRepo, validate)
	gestorService := service.NewGestorService(gestorRepo, organizationRepo, validate)
	assistantService := service.NewAssistantService(assistantRepo, organizationRepo, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	memberHandler := handlers.NewMemberHandler(memberService)
	gestorHandler := handlers.NewGestorHandler(gestorService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	authMiddleware := auth.NewMiddleware(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/signup", authHandler.SignUp)
		authGroup.POST("/signin", authHandler.SignIn)
		authGroup.POST("/reset", authHandler.SendResetCode)
		authGroup.POST("/reset/verify", authHandler.VerifyResetCode)
		authGroup.PATCH("/reset/password", authHandler.UpdatePassword)
	}

	// Authenticated API routes
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		users := api.Group("/users")
		{
			users.GET("/me", userHandler.GetProfile)
			users.POST("/register", userHandler.SubmitRegistration)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		organizations := api.Group("/organizations")
		{
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PATCH("/:id/documents", organizationHandler.UpdateTeamDocuments)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
		}

		members := api.Group("/members")
		{
			members.POST("", memberHandler.CreateMember)
			members.GET("", memberHandler.ListMembers)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		gestors := api.Group("/gestors")
		{
			gestors.POST("", gestorHandler.CreateGestor)
			gestors.GET("", gestorHandler.ListGestors)
			gestors.PUT("/:id", gestorHandler.UpdateGestor)
			gestors.DELETE("/:id", gestorHandler.DeleteGestor)
		}

		assistants := api.Group("/assistants")
		{
			assistants.POST("", assistantHandler.CreateAssistant)
			assistants.GET("", assistantHandler.ListAssistants)
			assistants.PUT("/:id", assistantHandler.UpdateAssistant)
			assistants.DELETE("/:id", assistantHandler.DeleteAssistant)
		}
	}

	return router
}
