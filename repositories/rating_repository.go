package repositories

import (
	"tastings-with-tay/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	GetByID(id uint) (*models.RecipeRating, error)
	GetByUser(recipeID, userID uint) (*models.RecipeRating, error)
	Create(rating *models.RecipeRating) error
	Update(id uint, rating int, review string) error
	Summary(recipeID uint) (models.RatingSummary, error)
	Reviews(recipeID uint) ([]models.RecipeRating, error)
	Delete(id uint) error
	DeleteByUser(recipeID, userID uint) (bool, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) GetByID(id uint) (*models.RecipeRating, error) {
	var rating models.RecipeRating
	err := r.db.First(&rating, id).Error
	return &rating, err
}

func (r *ratingRepository) GetByUser(recipeID, userID uint) (*models.RecipeRating, error) {
	var rating models.RecipeRating
	err := r.db.
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Order("id ASC").
		First(&rating).Error
	return &rating, err
}

func (r *ratingRepository) Create(rating *models.RecipeRating) error {
	return r.db.Create(rating).Error
}

func (r *ratingRepository) Update(id uint, rating int, review string) error {
	return r.db.Model(&models.RecipeRating{ID: id}).Updates(map[string]interface{}{
		"rating": rating,
		"review": review,
	}).Error
}

// Summary returns the raw average and count of a recipe's ratings.
func (r *ratingRepository) Summary(recipeID uint) (models.RatingSummary, error) {
	var row struct {
		Average *float64
		Count   int64
	}
	err := r.db.Model(&models.RecipeRating{}).
		Select("AVG(rating) AS average, COUNT(*) AS count").
		Where("recipe_id = ?", recipeID).
		Scan(&row).Error
	if err != nil {
		return models.RatingSummary{}, err
	}
	summary := models.RatingSummary{Count: row.Count}
	if row.Average != nil {
		summary.Average = *row.Average
	}
	return summary, nil
}

func (r *ratingRepository) Reviews(recipeID uint) ([]models.RecipeRating, error) {
	ratings := make([]models.RecipeRating, 0)
	err := r.db.Preload("User").
		Where("recipe_id = ? AND review <> ''", recipeID).
		Order(publicOrder).
		Find(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) Delete(id uint) error {
	return r.db.Delete(&models.RecipeRating{}, id).Error
}

func (r *ratingRepository) DeleteByUser(recipeID, userID uint) (bool, error) {
	res := r.db.Where("recipe_id = ? AND user_id = ?", recipeID, userID).Delete(&models.RecipeRating{})
	return res.RowsAffected > 0, res.Error
}
