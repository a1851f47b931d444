package services

import (
	"testing"
	"time"

	"tastings-with-tay/config"
	"tastings-with-tay/internal/testdb"
	"tastings-with-tay/models"
	"tastings-with-tay/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db *gorm.DB

	users    repositories.UserRepository
	tags     repositories.TagRepository
	recipes  repositories.RecipeRepository
	wines    repositories.WineRepository
	ratings  repositories.RatingRepository
	comments repositories.CommentRepository[models.RecipeComment]

	auth        AuthService
	recipe      RecipeService
	wine        WineService
	experiment  ExperimentService
	gallery     GalleryService
	collection  CollectionService
	tag         TagService
	subscriber  SubscriberService
	favorite    FavoriteService
	comment     CommentService[models.RecipeComment]
	wineComment CommentService[models.WineComment]
	rating      RatingService
	dashboard   DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)

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

	cfg := &config.Config{
		AuthSecret:  "test-secret",
		SessionTTL:  time.Hour,
		AdminEmails: []string{"Tay@Example.com"},
	}

	return &fixture{
		db:       db,
		users:    userRepo,
		tags:     tagRepo,
		recipes:  recipeRepo,
		wines:    wineRepo,
		ratings:  ratingRepo,
		comments: recipeCommentRepo,

		auth:        NewAuthService(userRepo, sessionRepo, cfg),
		recipe:      NewRecipeService(recipeRepo, tagRepo),
		wine:        NewWineService(wineRepo, tagRepo),
		experiment:  NewExperimentService(experimentRepo, recipeRepo, tagRepo),
		gallery:     NewGalleryService(galleryRepo),
		collection:  NewCollectionService(collectionRepo, recipeRepo, wineRepo),
		tag:         NewTagService(tagRepo),
		subscriber:  NewSubscriberService(subscriberRepo),
		favorite:    NewFavoriteService(favoriteRepo, recipeRepo, wineRepo),
		comment:     NewRecipeCommentService(recipeCommentRepo, recipeRepo),
		wineComment: NewWineCommentService(wineCommentRepo, wineRepo),
		rating:      NewRatingService(ratingRepo, recipeRepo),
		dashboard: NewDashboardService(DashboardRepositories{
			Recipes:        recipeRepo,
			Wines:          wineRepo,
			Experiments:    experimentRepo,
			Collections:    collectionRepo,
			Gallery:        galleryRepo,
			Subscribers:    subscriberRepo,
			RecipeComments: recipeCommentRepo,
			WineComments:   wineCommentRepo,
		}),
	}
}

func (f *fixture) createRecipe(t *testing.T, title string, published bool, tagIDs ...uint) *models.Recipe {
	t.Helper()
	recipe, err := f.recipe.CreateRecipe(models.CreateRecipeRequest{
		Title:      title,
		Category:   models.CategoryDinner,
		Difficulty: models.DifficultyMedium,
		Published:  published,
		TagIDs:     tagIDs,
	})
	require.NoError(t, err)
	return recipe
}

func (f *fixture) createWine(t *testing.T, name string, published bool) *models.Wine {
	t.Helper()
	wine, err := f.wine.CreateWine(models.CreateWineRequest{
		Name:      name,
		Type:      models.WineType("red"),
		Published: published,
	})
	require.NoError(t, err)
	return wine
}

func (f *fixture) createTag(t *testing.T, name string, typ models.TagType) *models.Tag {
	t.Helper()
	tag, err := f.tag.CreateTag(models.CreateTagRequest{Name: name, Type: typ})
	require.NoError(t, err)
	return tag
}

func (f *fixture) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Reader " + email, Email: email, Role: models.RoleUser}
	require.NoError(t, f.users.Create(user))
	return user
}

func ptr[T any](v T) *T {
	return &v
}
