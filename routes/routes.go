package routes

import (
	"net/http"

	"tastings-with-tay/handlers"
	"tastings-with-tay/middleware"
	"tastings-with-tay/models"
	"tastings-with-tay/policy"

	"github.com/gin-gonic/gin"
)

// Handlers is every handler the API mounts.
type Handlers struct {
	Auth           *handlers.AuthHandler
	Recipes        *handlers.RecipeHandler
	Wines          *handlers.WineHandler
	Experiments    *handlers.ExperimentHandler
	Gallery        *handlers.GalleryHandler
	Collections    *handlers.CollectionHandler
	Tags           *handlers.TagHandler
	Subscribers    *handlers.SubscriberHandler
	Favorites      *handlers.FavoriteHandler
	RecipeComments *handlers.CommentHandler[models.RecipeComment]
	WineComments   *handlers.CommentHandler[models.WineComment]
	Ratings        *handlers.RatingHandler
	Studio         *handlers.StudioHandler
}

type gate = func(entity policy.Entity, op policy.Operation) gin.HandlerFunc

// Register mounts the API on router. Every route passes through the policy
// gate, so a route without a table entry can never be reached.
func Register(router *gin.Engine, h Handlers, limiter *middleware.RateLimiter) {
	var g gate = middleware.Gate
	sanitize := middleware.SanitizeInput()
	throttle := limiter.Limit()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")

	recipes := api.Group("/recipes")
	{
		recipes.GET("", g(policy.Recipes, policy.OpList), h.Recipes.GetPublicRecipes)
		recipes.GET("/featured", g(policy.Recipes, policy.OpFeatured), h.Recipes.GetFeatured)
		recipes.GET("/slug/:slug", g(policy.Recipes, policy.OpBySlug), h.Recipes.GetBySlug)
		recipes.POST("/:id/view", g(policy.Recipes, policy.OpView), throttle, h.Recipes.RecordView)
	}

	wines := api.Group("/wines")
	{
		wines.GET("", g(policy.Wines, policy.OpList), h.Wines.GetPublicWines)
		wines.GET("/featured", g(policy.Wines, policy.OpFeatured), h.Wines.GetFeatured)
		wines.GET("/slug/:slug", g(policy.Wines, policy.OpBySlug), h.Wines.GetBySlug)
	}

	experiments := api.Group("/experiments")
	{
		experiments.GET("", g(policy.Experiments, policy.OpList), h.Experiments.GetPublicExperiments)
		experiments.GET("/featured", g(policy.Experiments, policy.OpFeatured), h.Experiments.GetFeatured)
		experiments.GET("/slug/:slug", g(policy.Experiments, policy.OpBySlug), h.Experiments.GetBySlug)
	}

	api.GET("/gallery", g(policy.Gallery, policy.OpList), h.Gallery.GetPublicImages)

	collections := api.Group("/collections")
	{
		collections.GET("", g(policy.Collections, policy.OpList), h.Collections.GetPublicCollections)
		collections.GET("/featured", g(policy.Collections, policy.OpFeatured), h.Collections.GetFeatured)
		collections.GET("/slug/:slug", g(policy.Collections, policy.OpBySlug), h.Collections.GetBySlug)
	}

	tags := api.Group("/tags")
	{
		tags.GET("", g(policy.Tags, policy.OpList), h.Tags.GetTags)
		tags.GET("/slug/:slug", g(policy.Tags, policy.OpBySlug), h.Tags.GetBySlug)
	}

	subscribers := api.Group("/subscribers")
	{
		subscribers.POST("/subscribe", g(policy.Subscribers, policy.OpSubscribe), throttle, h.Subscribers.Subscribe)
		subscribers.POST("/unsubscribe", g(policy.Subscribers, policy.OpUnsub), throttle, h.Subscribers.Unsubscribe)
	}

	favorites := api.Group("/favorites")
	{
		favorites.GET("/recipes", g(policy.Favorites, policy.OpMine), h.Favorites.GetRecipes)
		favorites.GET("/recipes/:id", g(policy.Favorites, policy.OpStatus), h.Favorites.RecipeStatus)
		favorites.POST("/recipes/:id/toggle", g(policy.Favorites, policy.OpToggle), h.Favorites.ToggleRecipe)
		favorites.GET("/wines", g(policy.Favorites, policy.OpMine), h.Favorites.GetWines)
		favorites.GET("/wines/:id", g(policy.Favorites, policy.OpStatus), h.Favorites.WineStatus)
		favorites.POST("/wines/:id/toggle", g(policy.Favorites, policy.OpToggle), h.Favorites.ToggleWine)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/recipes/:id", g(policy.Comments, policy.OpList), h.RecipeComments.GetThread)
		comments.POST("/recipes/:id", g(policy.Comments, policy.OpCreate), sanitize, h.RecipeComments.AddComment)
		comments.DELETE("/recipes/comment/:commentId", g(policy.Comments, policy.OpSoftDelete), h.RecipeComments.DeleteOwn)
		comments.GET("/wines/:id", g(policy.Comments, policy.OpList), h.WineComments.GetThread)
		comments.POST("/wines/:id", g(policy.Comments, policy.OpCreate), sanitize, h.WineComments.AddComment)
		comments.DELETE("/wines/comment/:commentId", g(policy.Comments, policy.OpSoftDelete), h.WineComments.DeleteOwn)
	}

	ratings := api.Group("/ratings/recipes/:id")
	{
		ratings.POST("", g(policy.Ratings, policy.OpRate), sanitize, h.Ratings.RateRecipe)
		ratings.DELETE("", g(policy.Ratings, policy.OpDelete), h.Ratings.DeleteMine)
		ratings.GET("/average", g(policy.Ratings, policy.OpAverage), h.Ratings.GetAverage)
		ratings.GET("/reviews", g(policy.Ratings, policy.OpReviews), h.Ratings.GetReviews)
		ratings.GET("/mine", g(policy.Ratings, policy.OpMine), h.Ratings.GetMine)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", g(policy.Auth, policy.OpRegister), h.Auth.Register)
		auth.POST("/login", g(policy.Auth, policy.OpLogin), h.Auth.Login)
		auth.GET("/google", g(policy.Auth, policy.OpGoogle), h.Auth.GoogleStart)
		auth.GET("/google/callback", g(policy.Auth, policy.OpGoogle), h.Auth.GoogleCallback)
		auth.GET("/session", g(policy.Auth, policy.OpSession), h.Auth.GetSession)
		auth.POST("/logout", g(policy.Auth, policy.OpLogout), h.Auth.Logout)
	}

	registerAdmin(api.Group("/admin"), h, g)
}

func registerAdmin(admin *gin.RouterGroup, h Handlers, g gate) {
	recipes := admin.Group("/recipes")
	{
		recipes.GET("", g(policy.Recipes, policy.OpAdminList), h.Recipes.GetRecipes)
		recipes.GET("/:id", g(policy.Recipes, policy.OpAdminByID), h.Recipes.GetRecipe)
		recipes.POST("", g(policy.Recipes, policy.OpCreate), h.Recipes.CreateRecipe)
		recipes.PUT("/:id", g(policy.Recipes, policy.OpUpdate), h.Recipes.UpdateRecipe)
		recipes.DELETE("/:id", g(policy.Recipes, policy.OpDelete), h.Recipes.DeleteRecipe)
	}

	wines := admin.Group("/wines")
	{
		wines.GET("", g(policy.Wines, policy.OpAdminList), h.Wines.GetWines)
		wines.GET("/:id", g(policy.Wines, policy.OpAdminByID), h.Wines.GetWine)
		wines.POST("", g(policy.Wines, policy.OpCreate), h.Wines.CreateWine)
		wines.PUT("/:id", g(policy.Wines, policy.OpUpdate), h.Wines.UpdateWine)
		wines.DELETE("/:id", g(policy.Wines, policy.OpDelete), h.Wines.DeleteWine)
	}

	experiments := admin.Group("/experiments")
	{
		experiments.GET("", g(policy.Experiments, policy.OpAdminList), h.Experiments.GetExperiments)
		experiments.GET("/:id", g(policy.Experiments, policy.OpAdminByID), h.Experiments.GetExperiment)
		experiments.POST("", g(policy.Experiments, policy.OpCreate), h.Experiments.CreateExperiment)
		experiments.PUT("/:id", g(policy.Experiments, policy.OpUpdate), h.Experiments.UpdateExperiment)
		experiments.DELETE("/:id", g(policy.Experiments, policy.OpDelete), h.Experiments.DeleteExperiment)
		experiments.POST("/:id/entries", g(policy.Experiments, policy.OpAddEntry), h.Experiments.AddEntry)
		experiments.PUT("/entries/:entryId", g(policy.Experiments, policy.OpEditEntry), h.Experiments.UpdateEntry)
		experiments.DELETE("/entries/:entryId", g(policy.Experiments, policy.OpDropEntry), h.Experiments.DeleteEntry)
		experiments.POST("/:id/graduate", g(policy.Experiments, policy.OpGraduate), h.Experiments.Graduate)
	}

	gallery := admin.Group("/gallery")
	{
		gallery.GET("", g(policy.Gallery, policy.OpAdminList), h.Gallery.GetImages)
		gallery.POST("", g(policy.Gallery, policy.OpCreate), h.Gallery.CreateImage)
		gallery.PUT("/reorder", g(policy.Gallery, policy.OpReorder), h.Gallery.Reorder)
		gallery.PUT("/:id", g(policy.Gallery, policy.OpUpdate), h.Gallery.UpdateImage)
		gallery.DELETE("/:id", g(policy.Gallery, policy.OpDelete), h.Gallery.DeleteImage)
	}

	collections := admin.Group("/collections")
	{
		collections.GET("", g(policy.Collections, policy.OpAdminList), h.Collections.GetCollections)
		collections.GET("/:id", g(policy.Collections, policy.OpAdminByID), h.Collections.GetCollection)
		collections.POST("", g(policy.Collections, policy.OpCreate), h.Collections.CreateCollection)
		collections.PUT("/:id", g(policy.Collections, policy.OpUpdate), h.Collections.UpdateCollection)
		collections.DELETE("/:id", g(policy.Collections, policy.OpDelete), h.Collections.DeleteCollection)
		collections.POST("/:id/recipes", g(policy.Collections, policy.OpAddMember), h.Collections.AddRecipe)
		collections.PUT("/:id/recipes/:recipeId", g(policy.Collections, policy.OpMoveMember), h.Collections.MoveRecipe)
		collections.DELETE("/:id/recipes/:recipeId", g(policy.Collections, policy.OpDropMember), h.Collections.RemoveRecipe)
		collections.POST("/:id/wines", g(policy.Collections, policy.OpAddMember), h.Collections.AddWine)
		collections.PUT("/:id/wines/:wineId", g(policy.Collections, policy.OpMoveMember), h.Collections.MoveWine)
		collections.DELETE("/:id/wines/:wineId", g(policy.Collections, policy.OpDropMember), h.Collections.RemoveWine)
	}

	tags := admin.Group("/tags")
	{
		tags.GET("", g(policy.Tags, policy.OpAdminList), h.Tags.GetAdminTags)
		tags.GET("/:id", g(policy.Tags, policy.OpAdminByID), h.Tags.GetTag)
		tags.POST("", g(policy.Tags, policy.OpCreate), h.Tags.CreateTag)
		tags.PUT("/:id", g(policy.Tags, policy.OpUpdate), h.Tags.UpdateTag)
		tags.DELETE("/:id", g(policy.Tags, policy.OpDelete), h.Tags.DeleteTag)
	}

	subscribers := admin.Group("/subscribers")
	{
		subscribers.GET("", g(policy.Subscribers, policy.OpAdminList), h.Subscribers.GetSubscribers)
		subscribers.GET("/stats", g(policy.Subscribers, policy.OpStats), h.Subscribers.GetStats)
		subscribers.DELETE("/:id", g(policy.Subscribers, policy.OpDelete), h.Subscribers.DeleteSubscriber)
	}

	comments := admin.Group("/comments")
	{
		comments.GET("/recipes", g(policy.Comments, policy.OpAdminList), h.RecipeComments.GetAll)
		comments.DELETE("/recipes/:commentId", g(policy.Comments, policy.OpDelete), h.RecipeComments.DeleteComment)
		comments.GET("/wines", g(policy.Comments, policy.OpAdminList), h.WineComments.GetAll)
		comments.DELETE("/wines/:commentId", g(policy.Comments, policy.OpDelete), h.WineComments.DeleteComment)
	}

	admin.DELETE("/ratings/:ratingId", g(policy.Ratings, policy.OpAdminDelete), h.Ratings.DeleteRating)

	users := admin.Group("/users")
	{
		users.GET("", g(policy.Users, policy.OpAdminList), h.Auth.GetUsers)
		users.PUT("/:id/role", g(policy.Users, policy.OpSetRole), h.Auth.UpdateRole)
	}

	admin.POST("/uploads", g(policy.Uploads, policy.OpUpload), h.Studio.Upload)
	admin.GET("/dashboard", g(policy.Dashboard, policy.OpSummary), h.Studio.GetDashboard)
}
