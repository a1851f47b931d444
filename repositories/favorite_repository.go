package repositories

import (
	"tastings-with-tay/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	ToggleRecipe(userID, recipeID uint) (bool, error)
	ToggleWine(userID, wineID uint) (bool, error)
	HasRecipe(userID, recipeID uint) (bool, error)
	HasWine(userID, wineID uint) (bool, error)
	Recipes(userID uint) ([]models.Recipe, error)
	Wines(userID uint) ([]models.Wine, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// toggle deletes the favorite row when present and creates it otherwise.
// It reports whether the row exists afterwards.
func toggle(db *gorm.DB, row interface{}, where string, args ...interface{}) (bool, error) {
	var favorited bool
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where(where, args...).Delete(row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		favorited = true
		return tx.Create(row).Error
	})
	return favorited, err
}

func (r *favoriteRepository) ToggleRecipe(userID, recipeID uint) (bool, error) {
	return toggle(r.db, &models.RecipeFavorite{UserID: userID, RecipeID: recipeID},
		"user_id = ? AND recipe_id = ?", userID, recipeID)
}

func (r *favoriteRepository) ToggleWine(userID, wineID uint) (bool, error) {
	return toggle(r.db, &models.WineFavorite{UserID: userID, WineID: wineID},
		"user_id = ? AND wine_id = ?", userID, wineID)
}

func (r *favoriteRepository) HasRecipe(userID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.RecipeFavorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) HasWine(userID, wineID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.WineFavorite{}).
		Where("user_id = ? AND wine_id = ?", userID, wineID).
		Count(&count).Error
	return count > 0, err
}

// Recipes lists the user's favorite published recipes, most recently
// favorited first.
func (r *favoriteRepository) Recipes(userID uint) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	err := r.db.Model(&models.Recipe{}).
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Where("recipe_favorites.user_id = ? AND recipes.published = ?", userID, true).
		Preload("Tags").
		Order("recipe_favorites.created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

func (r *favoriteRepository) Wines(userID uint) ([]models.Wine, error) {
	wines := make([]models.Wine, 0)
	err := r.db.Model(&models.Wine{}).
		Joins("JOIN wine_favorites ON wine_favorites.wine_id = wines.id").
		Where("wine_favorites.user_id = ? AND wines.published = ?", userID, true).
		Preload("Tags").
		Order("wine_favorites.created_at DESC").
		Find(&wines).Error
	return wines, err
}
