package repositories

import (
	"tastings-with-tay/models"

	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	GetByID(id uint) (*models.Recipe, error)
	GetBySlug(slug string, isPublic bool) (*models.Recipe, error)
	GetList(params models.RecipeListParams, isPublic bool) ([]models.Recipe, int64, error)
	GetFeatured(limit int) ([]models.Recipe, error)
	Update(id uint, fields map[string]interface{}, tags *[]models.Tag) error
	Delete(id uint) error
	IncrementViewCount(id uint) (bool, error)
	SlugTaken(slug string, excludeID uint) (bool, error)
	Exists(id uint, isPublic bool) (bool, error)
	Count() (models.FamilyCount, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

func (r *recipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Tags").First(&recipe, id).Error
	return &recipe, err
}

func (r *recipeRepository) GetBySlug(slug string, isPublic bool) (*models.Recipe, error) {
	var recipe models.Recipe
	query := r.db.Preload("Tags").Where("slug = ?", slug)
	if isPublic {
		query = query.Where("published = ?", true)
	}
	err := query.First(&recipe).Error
	return &recipe, err
}

func (r *recipeRepository) GetList(params models.RecipeListParams, isPublic bool) ([]models.Recipe, int64, error) {
	query := r.db.Model(&models.Recipe{})

	// Public reads only ever see published rows
	if isPublic {
		query = query.Where("published = ?", true)
	} else if params.Published != nil {
		query = query.Where("published = ?", *params.Published)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Difficulty != "" {
		query = query.Where("difficulty = ?", params.Difficulty)
	}
	if params.Search != "" {
		pattern := searchPattern(params.Search)
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}
	if params.Tag != "" {
		query = query.Where("id IN (?)", r.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug = ?", params.Tag))
	}

	order := publicOrder
	if !isPublic {
		order = adminOrder
	}
	return findPage[models.Recipe](query, params.ListParams, order, "Tags")
}

func (r *recipeRepository) GetFeatured(limit int) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	err := r.db.Preload("Tags").
		Where("published = ? AND featured = ?", true, true).
		Order(publicOrder).
		Limit(limit).
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) Update(id uint, fields map[string]interface{}, tags *[]models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&models.Recipe{ID: id}).Updates(fields).Error; err != nil {
				return err
			}
		}
		if tags != nil {
			if err := replaceTags(tx, &models.Recipe{ID: id}, *tags); err != nil {
				return err
			}
			if len(fields) == 0 {
				return touch(tx, &models.Recipe{ID: id})
			}
		}
		return nil
	})
}

// Delete removes the recipe with its associations, comments, ratings and
// favorites. Experiments that graduated into it lose the link.
func (r *recipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := replaceTags(tx, &models.Recipe{ID: id}, nil); err != nil {
			return err
		}
		dependents := []interface{}{
			&models.CollectionRecipe{},
			&models.RecipeComment{},
			&models.RecipeRating{},
			&models.RecipeFavorite{},
		}
		for _, model := range dependents {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.Experiment{}).
			Where("graduated_recipe_id = ?", id).
			Update("graduated_recipe_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

// IncrementViewCount bumps the counter of a published recipe and reports
// whether a row was touched.
func (r *recipeRepository) IncrementViewCount(id uint) (bool, error) {
	res := r.db.Model(&models.Recipe{}).
		Where("id = ? AND published = ?", id, true).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	return res.RowsAffected > 0, res.Error
}

func (r *recipeRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	return slugTaken(r.db, &models.Recipe{}, slug, excludeID)
}

func (r *recipeRepository) Exists(id uint, isPublic bool) (bool, error) {
	var count int64
	query := r.db.Model(&models.Recipe{}).Where("id = ?", id)
	if isPublic {
		query = query.Where("published = ?", true)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *recipeRepository) Count() (models.FamilyCount, error) {
	return countFamily(r.db, &models.Recipe{})
}
