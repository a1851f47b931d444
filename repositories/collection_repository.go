package repositories

import (
	"tastings-with-tay/models"

	"gorm.io/gorm"
)

type CollectionRepository interface {
	Create(collection *models.Collection) error
	GetByID(id uint) (*models.Collection, error)
	GetBySlug(slug string, isPublic bool) (*models.Collection, error)
	GetList(params models.CollectionListParams, isPublic bool) ([]models.Collection, int64, error)
	GetFeatured(limit int) ([]models.Collection, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	SlugTaken(slug string, excludeID uint) (bool, error)
	Count() (models.FamilyCount, error)

	MemberRecipes(collectionID uint, isPublic bool) ([]models.CollectionRecipe, error)
	MemberWines(collectionID uint, isPublic bool) ([]models.CollectionWine, error)
	AddRecipe(member *models.CollectionRecipe) error
	MoveRecipe(collectionID, recipeID uint, sortOrder int) (bool, error)
	RemoveRecipe(collectionID, recipeID uint) (bool, error)
	AddWine(member *models.CollectionWine) error
	MoveWine(collectionID, wineID uint, sortOrder int) (bool, error)
	RemoveWine(collectionID, wineID uint) (bool, error)
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(collection *models.Collection) error {
	return r.db.Create(collection).Error
}

func (r *collectionRepository) GetByID(id uint) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.First(&collection, id).Error
	return &collection, err
}

func (r *collectionRepository) GetBySlug(slug string, isPublic bool) (*models.Collection, error) {
	var collection models.Collection
	query := r.db.Where("slug = ?", slug)
	if isPublic {
		query = query.Where("published = ?", true)
	}
	err := query.First(&collection).Error
	return &collection, err
}

func (r *collectionRepository) GetList(params models.CollectionListParams, isPublic bool) ([]models.Collection, int64, error) {
	query := r.db.Model(&models.Collection{})
	if isPublic {
		query = query.Where("published = ?", true)
	}
	if params.Search != "" {
		pattern := searchPattern(params.Search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}

	order := publicOrder
	if !isPublic {
		order = adminOrder
	}
	return findPage[models.Collection](query, params.ListParams, order)
}

func (r *collectionRepository) GetFeatured(limit int) ([]models.Collection, error) {
	collections := make([]models.Collection, 0)
	err := r.db.
		Where("published = ? AND featured = ?", true, true).
		Order(publicOrder).
		Limit(limit).
		Find(&collections).Error
	return collections, err
}

func (r *collectionRepository) Update(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.Collection{ID: id}).Updates(fields).Error
}

func (r *collectionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&models.CollectionRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", id).Delete(&models.CollectionWine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Collection{}, id).Error
	})
}

func (r *collectionRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	return slugTaken(r.db, &models.Collection{}, slug, excludeID)
}

func (r *collectionRepository) Count() (models.FamilyCount, error) {
	return countFamily(r.db, &models.Collection{})
}

// MemberRecipes returns the recipe memberships of a collection in sort order,
// each with its recipe loaded.
func (r *collectionRepository) MemberRecipes(collectionID uint, isPublic bool) ([]models.CollectionRecipe, error) {
	members := make([]models.CollectionRecipe, 0)
	query := r.db.Model(&models.CollectionRecipe{}).
		Joins("JOIN recipes ON recipes.id = collection_recipes.recipe_id").
		Where("collection_recipes.collection_id = ?", collectionID)
	if isPublic {
		query = query.Where("recipes.published = ?", true)
	}
	err := query.
		Preload("Recipe.Tags").
		Order("collection_recipes.sort_order ASC, collection_recipes.created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *collectionRepository) MemberWines(collectionID uint, isPublic bool) ([]models.CollectionWine, error) {
	members := make([]models.CollectionWine, 0)
	query := r.db.Model(&models.CollectionWine{}).
		Joins("JOIN wines ON wines.id = collection_wines.wine_id").
		Where("collection_wines.collection_id = ?", collectionID)
	if isPublic {
		query = query.Where("wines.published = ?", true)
	}
	err := query.
		Preload("Wine.Tags").
		Order("collection_wines.sort_order ASC, collection_wines.created_at ASC").
		Find(&members).Error
	return members, err
}

// moveMember sets the sort order of one membership row and touches the
// collection when the row exists.
func (r *collectionRepository) moveMember(model interface{}, column string, collectionID, itemID uint, sortOrder int) (bool, error) {
	var moved bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(model).
			Where("collection_id = ? AND "+column+" = ?", collectionID, itemID).
			Update("sort_order", sortOrder)
		if res.Error != nil {
			return res.Error
		}
		moved = res.RowsAffected > 0
		if !moved {
			return nil
		}
		return touch(tx, &models.Collection{ID: collectionID})
	})
	return moved, err
}

func (r *collectionRepository) MoveRecipe(collectionID, recipeID uint, sortOrder int) (bool, error) {
	return r.moveMember(&models.CollectionRecipe{}, "recipe_id", collectionID, recipeID, sortOrder)
}

func (r *collectionRepository) MoveWine(collectionID, wineID uint, sortOrder int) (bool, error) {
	return r.moveMember(&models.CollectionWine{}, "wine_id", collectionID, wineID, sortOrder)
}

func (r *collectionRepository) AddRecipe(member *models.CollectionRecipe) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.CollectionRecipe{}).
			Where("collection_id = ? AND recipe_id = ?", member.CollectionID, member.RecipeID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return models.ErrConflict
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return touch(tx, &models.Collection{ID: member.CollectionID})
	})
}

func (r *collectionRepository) RemoveRecipe(collectionID, recipeID uint) (bool, error) {
	var removed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
			Delete(&models.CollectionRecipe{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected > 0
		if !removed {
			return nil
		}
		return touch(tx, &models.Collection{ID: collectionID})
	})
	return removed, err
}

func (r *collectionRepository) AddWine(member *models.CollectionWine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.CollectionWine{}).
			Where("collection_id = ? AND wine_id = ?", member.CollectionID, member.WineID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return models.ErrConflict
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return touch(tx, &models.Collection{ID: member.CollectionID})
	})
}

func (r *collectionRepository) RemoveWine(collectionID, wineID uint) (bool, error) {
	var removed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("collection_id = ? AND wine_id = ?", collectionID, wineID).
			Delete(&models.CollectionWine{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected > 0
		if !removed {
			return nil
		}
		return touch(tx, &models.Collection{ID: collectionID})
	})
	return removed, err
}
