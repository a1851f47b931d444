package repositories

import (
	"tastings-with-tay/models"

	"gorm.io/gorm"
)

const galleryOrder = "sort_order ASC, id ASC"

type GalleryRepository interface {
	Create(image *models.GalleryImage) error
	GetByID(id uint) (*models.GalleryImage, error)
	GetList(params models.GalleryListParams, isPublic bool) ([]models.GalleryImage, int64, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	Reorder(ids []uint) error
	Count() (models.FamilyCount, error)
}

type galleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

func (r *galleryRepository) GetByID(id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := r.db.First(&image, id).Error
	return &image, err
}

func (r *galleryRepository) GetList(params models.GalleryListParams, isPublic bool) ([]models.GalleryImage, int64, error) {
	query := r.db.Model(&models.GalleryImage{})
	order := adminOrder
	if isPublic {
		query = query.Where("published = ?", true)
		order = galleryOrder
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	return findPage[models.GalleryImage](query, params.ListParams, order)
}

func (r *galleryRepository) Update(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.GalleryImage{ID: id}).Updates(fields).Error
}

func (r *galleryRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryImage{}, id).Error
}

// Reorder assigns each listed image its position as sort order. Any id that
// does not exist aborts the whole batch.
func (r *galleryRepository) Reorder(ids []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			res := tx.Model(&models.GalleryImage{}).
				Where("id = ?", id).
				Update("sort_order", position)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return models.ErrNotFound
			}
		}
		return nil
	})
}

func (r *galleryRepository) Count() (models.FamilyCount, error) {
	return countFamily(r.db, &models.GalleryImage{})
}
