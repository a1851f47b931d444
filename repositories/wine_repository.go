package repositories

import (
	"strings"

	"tastings-with-tay/models"

	"gorm.io/gorm"
)

type WineRepository interface {
	Create(wine *models.Wine) error
	GetByID(id uint) (*models.Wine, error)
	GetBySlug(slug string, isPublic bool) (*models.Wine, error)
	GetList(params models.WineListParams, isPublic bool) ([]models.Wine, int64, error)
	GetFeatured(limit int) ([]models.Wine, error)
	Update(id uint, fields map[string]interface{}, tags *[]models.Tag) error
	Delete(id uint) error
	SlugTaken(slug string, excludeID uint) (bool, error)
	Exists(id uint, isPublic bool) (bool, error)
	Count() (models.FamilyCount, error)
}

type wineRepository struct {
	db *gorm.DB
}

func NewWineRepository(db *gorm.DB) WineRepository {
	return &wineRepository{db: db}
}

func (r *wineRepository) Create(wine *models.Wine) error {
	return r.db.Create(wine).Error
}

func (r *wineRepository) GetByID(id uint) (*models.Wine, error) {
	var wine models.Wine
	err := r.db.Preload("Tags").First(&wine, id).Error
	return &wine, err
}

func (r *wineRepository) GetBySlug(slug string, isPublic bool) (*models.Wine, error) {
	var wine models.Wine
	query := r.db.Preload("Tags").Where("slug = ?", slug)
	if isPublic {
		query = query.Where("published = ?", true)
	}
	err := query.First(&wine).Error
	return &wine, err
}

func (r *wineRepository) GetList(params models.WineListParams, isPublic bool) ([]models.Wine, int64, error) {
	query := r.db.Model(&models.Wine{})

	if isPublic {
		query = query.Where("published = ?", true)
	} else if params.Published != nil {
		query = query.Where("published = ?", *params.Published)
	}

	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.Country != "" {
		query = query.Where("LOWER(country) = ?", strings.ToLower(params.Country))
	}
	if params.Search != "" {
		pattern := searchPattern(params.Search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(winery) LIKE ? OR LOWER(region) LIKE ?)", pattern, pattern, pattern)
	}
	if params.Tag != "" {
		query = query.Where("id IN (?)", r.db.Table("wine_tags").
			Select("wine_tags.wine_id").
			Joins("JOIN tags ON tags.id = wine_tags.tag_id").
			Where("tags.slug = ?", params.Tag))
	}

	order := publicOrder
	if !isPublic {
		order = adminOrder
	}
	return findPage[models.Wine](query, params.ListParams, order, "Tags")
}

func (r *wineRepository) GetFeatured(limit int) ([]models.Wine, error) {
	wines := make([]models.Wine, 0)
	err := r.db.Preload("Tags").
		Where("published = ? AND featured = ?", true, true).
		Order(publicOrder).
		Limit(limit).
		Find(&wines).Error
	return wines, err
}

func (r *wineRepository) Update(id uint, fields map[string]interface{}, tags *[]models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			if err := tx.Model(&models.Wine{ID: id}).Updates(fields).Error; err != nil {
				return err
			}
		}
		if tags != nil {
			if err := replaceTags(tx, &models.Wine{ID: id}, *tags); err != nil {
				return err
			}
			if len(fields) == 0 {
				return touch(tx, &models.Wine{ID: id})
			}
		}
		return nil
	})
}

func (r *wineRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := replaceTags(tx, &models.Wine{ID: id}, nil); err != nil {
			return err
		}
		dependents := []interface{}{
			&models.CollectionWine{},
			&models.WineComment{},
			&models.WineFavorite{},
		}
		for _, model := range dependents {
			if err := tx.Where("wine_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Wine{}, id).Error
	})
}

func (r *wineRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	return slugTaken(r.db, &models.Wine{}, slug, excludeID)
}

func (r *wineRepository) Exists(id uint, isPublic bool) (bool, error) {
	var count int64
	query := r.db.Model(&models.Wine{}).Where("id = ?", id)
	if isPublic {
		query = query.Where("published = ?", true)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *wineRepository) Count() (models.FamilyCount, error) {
	return countFamily(r.db, &models.Wine{})
}
