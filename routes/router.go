package routes

import (
	"tastings-with-tay/config"
	"tastings-with-tay/handlers"
	"tastings-with-tay/helper"
	"tastings-with-tay/middleware"
	"tastings-with-tay/repositories"
	"tastings-with-tay/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers over db and returns
// the engine together with the limiter guarding public writes.
func NewRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, *middleware.RateLimiter) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)
	wineRepo := repositories.NewWineRepository(db)
	experimentRepo := repositories.NewExperimentRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	collectionRepo := repositories.NewCollectionRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	recipeCommentRepo := repositories.NewRecipeCommentRepository(db)
	wineCommentRepo := repositories.NewWineCommentRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, sessionRepo, cfg)
	googleService := services.NewGoogleService(cfg)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo)
	wineService := services.NewWineService(wineRepo, tagRepo)
	experimentService := services.NewExperimentService(experimentRepo, recipeRepo, tagRepo)
	galleryService := services.NewGalleryService(galleryRepo)
	collectionService := services.NewCollectionService(collectionRepo, recipeRepo, wineRepo)
	tagService := services.NewTagService(tagRepo)
	subscriberService := services.NewSubscriberService(subscriberRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, recipeRepo, wineRepo)
	recipeCommentService := services.NewRecipeCommentService(recipeCommentRepo, recipeRepo)
	wineCommentService := services.NewWineCommentService(wineCommentRepo, wineRepo)
	ratingService := services.NewRatingService(ratingRepo, recipeRepo)
	uploadService := services.NewUploadService(cfg.UploadDir, cfg.BaseURL)
	dashboardService := services.NewDashboardService(services.DashboardRepositories{
		Recipes:        recipeRepo,
		Wines:          wineRepo,
		Experiments:    experimentRepo,
		Collections:    collectionRepo,
		Gallery:        galleryRepo,
		Subscribers:    subscriberRepo,
		RecipeComments: recipeCommentRepo,
		WineComments:   wineCommentRepo,
	})

	// Initialize handlers
	h := helper.NewHTTPHelper()
	all := Handlers{
		Auth:           handlers.NewAuthHandler(authService, googleService, cfg.GoogleFrontendRedirect, h),
		Recipes:        handlers.NewRecipeHandler(recipeService, h),
		Wines:          handlers.NewWineHandler(wineService, h),
		Experiments:    handlers.NewExperimentHandler(experimentService, h),
		Gallery:        handlers.NewGalleryHandler(galleryService, h),
		Collections:    handlers.NewCollectionHandler(collectionService, h),
		Tags:           handlers.NewTagHandler(tagService, h),
		Subscribers:    handlers.NewSubscriberHandler(subscriberService, h),
		Favorites:      handlers.NewFavoriteHandler(favoriteService, h),
		RecipeComments: handlers.NewCommentHandler(recipeCommentService, h),
		WineComments:   handlers.NewCommentHandler(wineCommentService, h),
		Ratings:        handlers.NewRatingHandler(ratingService, h),
		Studio:         handlers.NewStudioHandler(dashboardService, uploadService, h),
	}

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.AuthMiddleware(authService))
	router.Static(services.UploadRoute, cfg.UploadDir)

	limiter := middleware.NewRateLimiter(cfg.PublicWriteRPS, cfg.PublicWriteBurst)
	Register(router, all, limiter)

	return router, limiter
}
